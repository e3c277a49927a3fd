/*
Package sqldataset provides functions to read datasets from SQL database
tables and to write datasets onto them.

Tables are read whole: every column of the table becomes a column of the
dataset, in table order, so the first one must identify rows and the last
one must hold labels. NULL values are read as empty strings.

Database specifics are handled by an Adapter. The sqlite3adapter and
pgadapter packages provide adapters for SQLite3 and PostgreSQL.
*/
package sqldataset
