package fetcher_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sagarjana00/onelink-portfolio/internal/fetcher"
	"github.com/sagarjana00/onelink-portfolio/internal/metrics"
	"github.com/sagarjana00/onelink-portfolio/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("FetchLanguages", func() {
	ctx := context.Background()

	It("skal returnere språkfordelingen", func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.URL.Path).To(Equal("/repos/octocat/hello/languages"))
			_, _ = fmt.Fprint(w, `{"Go": 1234, "Shell": 56}`)
		}))
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchLanguages(ctx, "octocat", "hello")
		Expect(res.Status).To(Equal(models.FetchOK))
		Expect(res.Languages).To(Equal(map[string]int{"Go": 1234, "Shell": 56}))
	})

	It("skal skille tomt svar fra feil", func() {
		empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{}`)
		}))
		defer empty.Close()
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failing.Close()

		a := newTestFetcher(empty.URL).FetchLanguages(ctx, "o", "r")
		b := newTestFetcher(failing.URL).FetchLanguages(ctx, "o", "r")

		Expect(a.Languages).To(BeEmpty())
		Expect(b.Languages).NotTo(BeNil())
		Expect(b.Languages).To(BeEmpty())
		Expect(a.Status).To(Equal(models.FetchEmpty))
		Expect(b.Status).To(Equal(models.FetchFailed))
		Expect(b.Err).To(HaveOccurred())
	})

	It("skal registrere utfallet i metrikkene", func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"Go": 1}`)
		}))
		defer ts.Close()

		f := newTestFetcher(ts.URL)
		f.Metrics = metrics.NewRecorder()
		f.FetchLanguages(ctx, "o", "r")
		Expect(testutil.ToFloat64(f.Metrics.GitHubRequests.WithLabelValues("languages", "ok"))).To(Equal(1.0))
	})
})

var _ = Describe("FetchReadme", func() {
	ctx := context.Background()

	serve := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = fmt.Fprint(w, body)
		}))
	}

	It("skal dekode base64-innhold med linjeskift", func() {
		encoded := base64.StdEncoding.EncodeToString([]byte("# Hei\n\n[Live demo](https://foo.example.com)\n"))
		wrapped := encoded[:10] + "\\n" + encoded[10:] + "\\n"
		ts := serve(http.StatusOK, fmt.Sprintf(`{"content": "%s", "encoding": "base64"}`, wrapped))
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchReadme(ctx, "o", "r")
		Expect(res.Status).To(Equal(models.FetchOK))
		Expect(res.Present).To(BeTrue())
		Expect(res.Text).To(ContainSubstring("[Live demo](https://foo.example.com)"))
	})

	It("skal gi not_found når README mangler", func() {
		ts := serve(http.StatusNotFound, `{"message": "Not Found"}`)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchReadme(ctx, "o", "r")
		Expect(res.Present).To(BeFalse())
		Expect(res.Status).To(Equal(models.FetchNotFound))
	})

	It("skal gi decode_error ved ugyldig base64", func() {
		ts := serve(http.StatusOK, `{"content": "!!!ikke base64!!!", "encoding": "base64"}`)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchReadme(ctx, "o", "r")
		Expect(res.Present).To(BeFalse())
		Expect(res.Status).To(Equal(models.FetchDecodeError))
	})

	It("skal gi empty ved tom README", func() {
		ts := serve(http.StatusOK, `{"content": "", "encoding": "base64"}`)
		defer ts.Close()

		res := newTestFetcher(ts.URL).FetchReadme(ctx, "o", "r")
		Expect(res.Present).To(BeFalse())
		Expect(res.Status).To(Equal(models.FetchEmpty))
	})

	It("skal gi failed ved transportfeil", func() {
		ts := serve(http.StatusOK, `{}`)
		url := ts.URL
		ts.Close()

		res := newTestFetcher(url).FetchReadme(ctx, "o", "r")
		Expect(res.Present).To(BeFalse())
		Expect(res.Status).To(Equal(models.FetchFailed))
	})
})

var _ = Describe("DecodeReadme", func() {
	enc := func(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

	It("skal aldri feile på ugyldige UTF-8-sekvenser", func() {
		text, err := fetcher.DecodeReadme(enc([]byte("Hei \xff\xc3 verden")), "base64")
		Expect(err).NotTo(HaveOccurred())
		Expect(utf8.ValidString(text)).To(BeTrue())
		Expect(text).To(HavePrefix("Hei "))
		Expect(text).To(HaveSuffix(" verden"))
	})

	It("skal fjerne UTF-8 BOM", func() {
		text, err := fetcher.DecodeReadme(enc([]byte("\xef\xbb\xbfHei")), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("Hei"))
	})

	It("skal dekode UTF-16 med BOM", func() {
		text, err := fetcher.DecodeReadme(enc([]byte{0xff, 0xfe, 'H', 0, 'i', 0}), "base64")
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("Hi"))
	})

	It("skal avvise ukjent encoding", func() {
		_, err := fetcher.DecodeReadme("abc", "rot13")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("StoreProjectsJSON", func() {
	It("skal skrive prosjektene til <user>_projects.json", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "data")
		entries := []models.RepoEntry{{Repo: models.RepoMeta{Name: "a"}, Status: models.StatusCodeOnly}}

		Expect(fetcher.StoreProjectsJSON(dir, "octocat", entries)).To(Succeed())

		data, err := os.ReadFile(filepath.Join(dir, "octocat_projects.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Contains(string(data), `"status": "code_only"`)).To(BeTrue())
	})

	It("skal kunne leses tilbake med LoadProjectsJSON", func() {
		dir := GinkgoT().TempDir()
		demo := "https://a.vercel.app"
		entries := []models.RepoEntry{{
			Repo:      models.RepoMeta{ID: 1, Name: "a"},
			Languages: map[string]int{"Go": 1},
			DemoURL:   &demo,
			Status:    models.StatusDeployed,
		}}
		Expect(fetcher.StoreProjectsJSON(dir, "octocat", entries)).To(Succeed())

		got, err := fetcher.LoadProjectsJSON(filepath.Join(dir, "octocat_projects.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(entries))
	})

	It("skal feile på ugyldig JSON", func() {
		file := filepath.Join(GinkgoT().TempDir(), "x.json")
		Expect(os.WriteFile(file, []byte("{ikke json"), 0o644)).To(Succeed())
		_, err := fetcher.LoadProjectsJSON(file)
		Expect(err).To(MatchError(ContainSubstring("ugyldig JSON")))
	})
})
