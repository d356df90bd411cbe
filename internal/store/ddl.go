package store

// clustersDDL defines the ignitegen_clusters table holding cluster documents.
const clustersDDL = `CREATE TABLE IF NOT EXISTS ignitegen_clusters (
    id TEXT PRIMARY KEY,
    document JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// generationsDDL defines the ignitegen_generations table.
//
// Each row represents a completed generation of one cluster:
// - checksum: SHA256 of the document and the options shaping the output
// - codegen_version: version of the emission logic
// - file_names: relative paths of the written files
//
// The most recent row per cluster decides whether generation is skipped.
const generationsDDL = `CREATE TABLE IF NOT EXISTS ignitegen_generations (
    id SERIAL PRIMARY KEY,
    cluster TEXT NOT NULL,
    generated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    checksum VARCHAR(64) NOT NULL,
    codegen_version VARCHAR(32) NOT NULL,
    file_names TEXT[] NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ignitegen_generations_cluster
ON ignitegen_generations (cluster, id DESC)`
