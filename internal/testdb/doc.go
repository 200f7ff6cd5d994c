//go:build integration

// Package testdb provides helpers for tests that run against a real Postgres
// database.
//
// Tests are skipped unless SPARK_TEST_DATABASE_URL or DATABASE_URL is set.
// The schema is applied once per connection from the embedded migrations, and
// each test runs inside a transaction that is rolled back when it finishes, so
// tests may run in parallel without cleanup.
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			s := postgres.NewPostgresGenerationLogStore(tx, logger)
//			...
//		})
//	}
package testdb
