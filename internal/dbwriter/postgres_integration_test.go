//go:build integration

package dbwriter_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sagarjana00/onelink-portfolio/internal/dbwriter"
	"github.com/sagarjana00/onelink-portfolio/internal/runner"
	"github.com/sagarjana00/onelink-portfolio/internal/testutils"
)

var _ = Describe("SQLWriter mot Postgres", Ordered, func() {
	var (
		ctx    context.Context
		testDB *testutils.TestDB
		writer *dbwriter.SQLWriter
	)

	BeforeAll(func() {
		ctx = context.Background()

		var err error
		testDB, err = testutils.StartTestPostgresContainer(ctx)
		Expect(err).NotTo(HaveOccurred())

		writer = dbwriter.NewSQLWriter(testDB.DB, dbwriter.DriverPostgres)
		Expect(writer.EnsureSchema(ctx)).To(Succeed())
	})

	AfterAll(func() {
		testDB.Close()
	})

	It("skal nå databasen via CheckDatabaseConnection", func() {
		Expect(runner.CheckDatabaseConnection(ctx, dbwriter.DriverPostgres, testDB.DSN)).To(Succeed())
	})

	It("skriver inn prosjekt og språkinformasjon idempotent", func() {
		entry := sampleEntry()
		snap := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		Expect(writer.ImportProject(ctx, entry, snap)).To(Succeed())
		Expect(writer.ImportProject(ctx, entry, snap)).To(Succeed())

		row := testDB.DB.QueryRow(`SELECT COUNT(*) FROM projects WHERE full_name = 'octocat/demo'`)
		var count int
		Expect(row.Scan(&count)).To(Succeed())
		Expect(count).To(Equal(1))

		langs, err := writer.Queries().ListProjectLanguages(ctx, 42)
		Expect(err).NotTo(HaveOccurred())
		Expect(langs).To(HaveLen(2))
	})
})
