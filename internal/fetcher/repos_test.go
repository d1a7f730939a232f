package fetcher_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sagarjana00/onelink-portfolio/internal/fetcher"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
)

// fakeRepoServer serverer /users/{user}/repos fra en funksjon per side og husker hvilke sider som ble spurt etter.
type fakeRepoServer struct {
	mu    sync.Mutex
	pages []int
	page  func(page int) (int, []models.RepoMeta)
}

func (f *fakeRepoServer) requested() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.pages...)
}

func (f *fakeRepoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer GinkgoRecover()

	Expect(r.URL.Path).To(Equal("/users/octocat/repos"))
	Expect(r.URL.Query().Get("per_page")).To(Equal("100"))
	Expect(r.URL.Query().Get("sort")).To(Equal("updated"))

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	f.mu.Lock()
	f.pages = append(f.pages, page)
	f.mu.Unlock()

	status, repos := f.page(page)
	w.WriteHeader(status)
	if status == http.StatusOK {
		_ = json.NewEncoder(w).Encode(repos)
	}
}

func makeRepos(page, n int) []models.RepoMeta {
	repos := make([]models.RepoMeta, n)
	for i := range repos {
		id := page*1000 + i
		repos[i] = models.RepoMeta{
			ID:       int64(id),
			Name:     fmt.Sprintf("repo-%d", id),
			FullName: fmt.Sprintf("octocat/repo-%d", id),
			Owner:    models.RepoOwner{Login: "octocat"},
		}
	}
	return repos
}

var _ = Describe("FetchUserRepos", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("skal stoppe på første tomme side", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			if page <= 2 {
				return http.StatusOK, makeRepos(page, 100)
			}
			return http.StatusOK, nil
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(srv.requested()).To(Equal([]int{1, 2, 3}))
		Expect(res.Repos).To(HaveLen(200))
		Expect(res.Fetched).To(Equal(200))
		Expect(res.Status).To(Equal(models.FetchOK))
		Expect(res.Capped).To(BeFalse())
	})

	It("skal stoppe rett etter siden som passerer 500 og aldri be om neste side", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			return http.StatusOK, makeRepos(page, 100)
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(srv.requested()).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		Expect(res.Fetched).To(Equal(600))
		Expect(res.Capped).To(BeTrue())
	})

	It("skal ikke stoppe når totalen er nøyaktig 500", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			if page <= 5 {
				return http.StatusOK, makeRepos(page, 100)
			}
			return http.StatusOK, nil
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(srv.requested()).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		Expect(res.Fetched).To(Equal(500))
		Expect(res.Capped).To(BeFalse())
	})

	It("skal filtrere etter taket, ikke før", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			repos := makeRepos(page, 100)
			for i := range repos {
				repos[i].IsFork = i%2 == 0
			}
			return http.StatusOK, repos
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(res.Fetched).To(Equal(600))
		Expect(res.Repos).To(HaveLen(300))
	})

	It("skal returnere delresultat når en side feiler", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			if page == 1 {
				return http.StatusOK, makeRepos(page, 100)
			}
			return http.StatusBadGateway, nil
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(srv.requested()).To(Equal([]int{1, 2}))
		Expect(res.Repos).To(HaveLen(100))
		Expect(res.Status).To(Equal(models.FetchFailed))
		Expect(res.Err).To(HaveOccurred())
	})

	It("skal gi tom liste når GitHub ikke kan nås", func() {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		res := newTestFetcher(url).FetchUserRepos(ctx, "octocat")
		Expect(res.Repos).NotTo(BeNil())
		Expect(res.Repos).To(BeEmpty())
		Expect(res.Status).To(Equal(models.FetchFailed))
	})

	It("skal gi empty når brukeren ikke har repos", func() {
		srv := &fakeRepoServer{page: func(page int) (int, []models.RepoMeta) {
			return http.StatusOK, []models.RepoMeta{}
		}}
		ts := httptest.NewServer(srv)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchUserRepos(ctx, "octocat")
		Expect(res.Repos).To(BeEmpty())
		Expect(res.Status).To(Equal(models.FetchEmpty))
	})
})

var _ = Describe("FilterRepos", func() {
	It("skal være en no-op når ingen er fork eller arkivert, og bevare rekkefølgen", func() {
		repos := makeRepos(1, 5)
		Expect(fetcher.FilterRepos(repos)).To(Equal(repos))
	})

	It("skal fjerne forks og arkiverte uansett andre felt", func() {
		desc := "WIP"
		home := "https://x.vercel.app"
		repos := []models.RepoMeta{
			{Name: "a"},
			{Name: "fork", IsFork: true, Description: &desc, Homepage: &home},
			{Name: "arkiv", Archived: true},
			{Name: "begge", IsFork: true, Archived: true},
			{Name: "b"},
		}
		got := fetcher.FilterRepos(repos)
		Expect(got).To(HaveLen(2))
		Expect(got[0].Name).To(Equal("a"))
		Expect(got[1].Name).To(Equal("b"))
	})
})
