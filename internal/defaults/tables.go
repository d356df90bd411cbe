package defaults

// dialects maps a JDBC dialect tag to the Ignite dialect implementation.
var dialects = map[string]string{
	"Generic":    "org.apache.ignite.cache.store.jdbc.dialect.BasicJdbcDialect",
	"Oracle":     "org.apache.ignite.cache.store.jdbc.dialect.OracleDialect",
	"DB2":        "org.apache.ignite.cache.store.jdbc.dialect.DB2Dialect",
	"SQLServer":  "org.apache.ignite.cache.store.jdbc.dialect.SQLServerDialect",
	"MySQL":      "org.apache.ignite.cache.store.jdbc.dialect.MySQLDialect",
	"PostgreSQL": "org.apache.ignite.cache.store.jdbc.dialect.BasicJdbcDialect",
	"H2":         "org.apache.ignite.cache.store.jdbc.dialect.H2Dialect",
}

const eventType = "org.apache.ignite.events.EventType"

var eventGroups = []EventGroup{
	{Value: "EVTS_CHECKPOINT", Class: eventType, Label: "Checkpoint"},
	{Value: "EVTS_DEPLOYMENT", Class: eventType, Label: "Deployment"},
	{Value: "EVTS_ERROR", Class: eventType, Label: "Error"},
	{Value: "EVTS_DISCOVERY", Class: eventType, Label: "Discovery"},
	{Value: "EVTS_JOB_EXECUTION", Class: eventType, Label: "Job execution"},
	{Value: "EVTS_TASK_EXECUTION", Class: eventType, Label: "Task execution"},
	{Value: "EVTS_CACHE", Class: eventType, Label: "Cache"},
	{Value: "EVTS_CACHE_REBALANCE", Class: eventType, Label: "Cache rebalance"},
	{Value: "EVTS_CACHE_LIFECYCLE", Class: eventType, Label: "Cache lifecycle"},
	{Value: "EVTS_CACHE_QUERY", Class: eventType, Label: "Cache query"},
	{Value: "EVTS_SWAPSPACE", Class: eventType, Label: "Swap space"},
	{Value: "EVTS_IGFS", Class: eventType, Label: "IGFS"},
}
