// Command ignitegen generates Apache Ignite node configuration code from
// cluster documents.
//
// The CLI supports:
//   - generate: Produce Java sources that build an IgniteConfiguration
//   - doctor: Report problems in a cluster document
//   - clusters: List and import documents in the cluster store
//   - config: Show the effective configuration
//   - version: Print version information
//
// Cluster documents are read from YAML/JSON files or from the cluster store,
// a directory of documents or a PostgreSQL table when a database is
// configured. With a database, a generation ledger skips clusters whose
// output cannot have changed.
//
// Usage:
//
//	ignitegen [flags] <command>
package main

func main() {
	Execute()
}
