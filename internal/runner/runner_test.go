package runner_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	_ "modernc.org/sqlite"

	"github.com/sagarjana00/onelink-portfolio/internal/config"
	"github.com/sagarjana00/onelink-portfolio/internal/mocks"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
	"github.com/sagarjana00/onelink-portfolio/internal/runner"
)

var _ = Describe("RunAppSafe", func() {
	It("skal returnere prosjektene når kjøringen lykkes", func() {
		fetcher := mocks.NewMockGitHubAPI(GinkgoT())
		fetcher.EXPECT().FetchUserRepos(mock.Anything, "octocat").
			Return(models.RepoListResult{Repos: []models.RepoMeta{}, Status: models.FetchEmpty})

		entries, err := runner.RunAppSafe(context.Background(), runner.NewApp(config.Config{}, fetcher, nil), "octocat")
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("skal returnere lagringsfeil sammen med resultatet", func() {
		fetcher := mocks.NewMockGitHubAPI(GinkgoT())
		writer := mocks.NewMockWriter(GinkgoT())
		fetcher.EXPECT().FetchUserRepos(mock.Anything, "octocat").
			Return(models.RepoListResult{Repos: []models.RepoMeta{repo(1, "a")}, Status: models.FetchOK})
		fetcher.EXPECT().FetchLanguages(mock.Anything, "octocat", "a").Return(okLangs)
		fetcher.EXPECT().FetchReadme(mock.Anything, "octocat", "a").Return(noReadme)
		writer.EXPECT().ImportProject(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("DB nede"))

		entries, err := runner.RunAppSafe(context.Background(), runner.NewApp(config.Config{}, fetcher, writer), "octocat")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("DB nede"))
		Expect(entries).To(HaveLen(1))
	})
})

var _ = Describe("CheckDatabaseConnection", func() {
	It("skal lykkes mot SQLite i minnet", func() {
		Expect(runner.CheckDatabaseConnection(context.Background(), "sqlite", ":memory:")).To(Succeed())
	})

	It("skal feile for ukjent driver", func() {
		err := runner.CheckDatabaseConnection(context.Background(), "finnes-ikke", "x")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("DB open-feil"))
	})
})

var _ = DescribeTable("ByteSize",
	func(in uint64, want string) {
		Expect(runner.ByteSize(in)).To(Equal(want))
	},
	Entry("bytes", uint64(512), "512 B"),
	Entry("kibibytes", uint64(1536), "1.5 KiB"),
	Entry("mebibytes", uint64(5*1024*1024), "5.0 MiB"),
)
