package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
)

// dataSource describes the connection pool class of one JDBC dialect and
// the secret keys it is configured from.
type dataSource struct {
	class string
	// props maps a setter name to the suffix of its secret key.
	props [][2]string
}

var dataSources = map[string]dataSource{
	"Generic": {
		class: "com.mchange.v2.c3p0.ComboPooledDataSource",
		props: [][2]string{{"jdbcUrl", "jdbc.url"}},
	},
	"Oracle": {
		class: "oracle.jdbc.pool.OracleDataSource",
		props: [][2]string{{"URL", "jdbc.url"}},
	},
	"DB2": {
		class: "com.ibm.db2.jcc.DB2DataSource",
		props: [][2]string{
			{"serverName", "jdbc.server_name"},
			{"portNumber", "jdbc.port_number"},
			{"databaseName", "jdbc.database_name"},
			{"driverType", "jdbc.driver_type"},
		},
	},
	"SQLServer": {
		class: "com.microsoft.sqlserver.jdbc.SQLServerDataSource",
		props: [][2]string{{"URL", "jdbc.url"}},
	},
	"MySQL": {
		class: "com.mysql.jdbc.jdbc2.optional.MysqlDataSource",
		props: [][2]string{{"URL", "jdbc.url"}},
	},
	"PostgreSQL": {
		class: "org.postgresql.ds.PGPoolingDataSource",
		props: [][2]string{{"url", "jdbc.url"}},
	},
	"H2": {
		class: "org.h2.jdbcx.JdbcDataSource",
		props: [][2]string{{"URL", "jdbc.url"}},
	},
}

// dataSourceBean builds the connection pool singleton id for dialect, or
// nil for an unknown dialect.
func (a *Assembler) dataSourceBean(id, dialect string) *bean.Bean {
	ds, ok := dataSources[dialect]
	if !ok || id == "" {
		return nil
	}
	b := bean.NewDiff(ds.class, id, nil, nil)
	for _, p := range ds.props {
		b.SecretProperty(p[0], id+"."+p[1])
	}
	return b.SecretProperty("user", id+".jdbc.username").
		SecretProperty("password", id+".jdbc.password")
}

// dialectClass returns the store dialect implementation, or "".
func (a *Assembler) dialectClass(dialect string) string {
	return a.dflts.Dialects[dialect]
}

// Dialects lists the JDBC dialects a data source can be built for.
func Dialects() []string {
	return []string{"Generic", "Oracle", "DB2", "SQLServer", "MySQL", "PostgreSQL", "H2"}
}
