package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doorworks/internal/metrics"
	"doorworks/internal/models"
	"doorworks/internal/sanity"
)

var testIdentity = sanity.Identity{ProjectID: "abc123", Dataset: "production"}

// fakeFetcher answers queries from a map of canned JSON results. Unknown
// queries decode as null.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	calls     []string
	params    []map[string]any
}

func (f *fakeFetcher) Fetch(_ context.Context, query string, params map[string]any, dest any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	f.params = append(f.params, params)
	if f.err != nil {
		return f.err
	}
	body, ok := f.responses[query]
	if !ok {
		body = "null"
	}
	return json.Unmarshal([]byte(body), dest)
}

func newTestService(responses map[string]string) (*Service, *fakeFetcher) {
	f := &fakeFetcher{responses: responses}
	return NewService(f, testIdentity, nil), f
}

func TestQueryFunctionsSwallowErrors(t *testing.T) {
	f := &fakeFetcher{err: errors.New("dial tcp: connection refused")}
	m, err := metrics.New()
	require.NoError(t, err)
	s := NewService(f, testIdentity, m)
	ctx := context.Background()

	assert.Nil(t, s.HomePage(ctx))
	assert.Nil(t, s.Product(ctx, "oak"))
	assert.Nil(t, s.ContactInfo(ctx))
	assert.Nil(t, s.Testimonials(ctx))
	assert.Equal(t, models.AboutPage{}, s.AboutPage(ctx))

	products := s.Products(ctx)
	require.NotNil(t, products)
	assert.Empty(t, products)

	doors := s.ProductsByCategory(ctx, models.CategoryDoor)
	require.NotNil(t, doors)
	assert.Empty(t, doors)

	gallery := s.GalleryItems(ctx)
	require.NotNil(t, gallery)
	assert.Empty(t, gallery)

	faqs := s.FAQs(ctx)
	require.NotNil(t, faqs)
	assert.Empty(t, faqs)

	areas := s.ServiceAreas(ctx)
	require.NotNil(t, areas)
	assert.Empty(t, areas)

	_, err = s.FetchTestimonials(ctx)
	assert.Error(t, err)
}

func TestProducts(t *testing.T) {
	s, f := newTestService(map[string]string{
		productsQuery: `[
			{"_id":"p1","name":"Oak Entry Door","slug":"oak-entry-door","price":1299.5,"category":"Door",
			 "features":["Solid core"],"inStock":false,
			 "images":[{"asset":{"url":"https://cdn.sanity.io/images/abc123/production/a-1x1.jpg"}},null]},
			{"_id":"p2","name":"Bay Window!","category":"windows"}
		]`,
	})

	got := s.Products(context.Background())
	require.Len(t, got, 2)

	assert.Equal(t, models.Product{
		ID:        "oak-entry-door",
		Name:      "Oak Entry Door",
		Price:     1299.5,
		Category:  models.CategoryDoor,
		Features:  []string{"Solid core"},
		Materials: []string{},
		InStock:   false,
		Images:    []string{"https://cdn.sanity.io/images/abc123/production/a-1x1.jpg"},
	}, got[0])

	assert.Equal(t, "bay-window", got[1].ID, "id falls back to a slug of the name")
	assert.Equal(t, models.CategoryWindow, got[1].Category)
	assert.True(t, got[1].InStock, "missing stock flag means in stock")
	assert.NotNil(t, got[1].Features)
	assert.NotNil(t, got[1].Images)
	assert.Len(t, f.calls, 1)
}

func TestProductsByCategoryPassesParam(t *testing.T) {
	s, f := newTestService(map[string]string{
		productsByCategoryQuery: `[{"name":"Casement","slug":"casement","category":"window"}]`,
	})

	got := s.ProductsByCategory(context.Background(), models.CategoryWindow)
	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"category": "window"}, f.params[0])
}

func TestProduct(t *testing.T) {
	s, f := newTestService(map[string]string{
		productBySlugQuery: `{"name":"Oak Entry Door","slug":"oak-entry-door","category":"door",
			"images":[{"asset":{"_ref":"image-f00d-800x600-jpg"}}]}`,
	})

	p := s.Product(context.Background(), "oak-entry-door")
	require.NotNil(t, p)
	assert.Equal(t, "oak-entry-door", p.ID)
	assert.Equal(t, []string{"https://cdn.sanity.io/images/abc123/production/f00d-800x600.jpg"}, p.Images)
	assert.Equal(t, map[string]any{"slug": "oak-entry-door"}, f.params[0])
}

func TestProductNotFound(t *testing.T) {
	s, _ := newTestService(nil)
	assert.Nil(t, s.Product(context.Background(), "nope"))
}

func TestGalleryItems(t *testing.T) {
	s, _ := newTestService(map[string]string{
		galleryQuery: `[
			{"_id":"g1","title":"Patio","image":"https://example.com/patio.jpg",
			 "fullSizeImage":{"asset":{"_ref":"image-beef-4000x3000-png"}},
			 "category":"Doors",
			 "projectDetails":[{"label":"Location","value":"Springfield"}],
			 "relatedProducts":[{"_id":"p1","name":"Slider","slug":"slider"},null]},
			{"_id":"g2","title":"Bay","image":"https://example.com/bay.jpg","category":null}
		]`,
	})

	got := s.GalleryItems(context.Background())
	require.Len(t, got, 2)

	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/beef-4000x3000.png", got[0].FullSizeImage)
	assert.Equal(t, "Doors", got[0].Category)
	assert.Equal(t, []models.ProductRef{{ID: "p1", Name: "Slider", Slug: "slider"}}, got[0].RelatedProducts)
	assert.Equal(t, []models.ProjectDetail{{Label: "Location", Value: "Springfield"}}, got[0].ProjectDetails)

	assert.Equal(t, "Uncategorized", got[1].Category)
	assert.Equal(t, "https://example.com/bay.jpg", got[1].FullSizeImage, "full size defaults to the primary image")
	assert.NotNil(t, got[1].RelatedProducts)
	assert.NotNil(t, got[1].ProjectDetails)
}

func TestFetchTestimonialsImageNormalization(t *testing.T) {
	s, _ := newTestService(map[string]string{
		testimonialsQuery: `[
			{"_id":"t1","_createdAt":"2025-01-03T00:00:00Z","author":"Ann","quote":"Great","rating":5,
			 "image":{"asset":{"_ref":"image-abc123-800x600-jpg"}}},
			{"_id":"t2","_createdAt":"2025-01-02T00:00:00Z","name":"bob","quote":"Good","rating":4,
			 "image":"https://example.com/bob.png"},
			{"_id":"t3","_createdAt":"2025-01-01T00:00:00Z","author":"Cy","quote":"Fine","image":null}
		]`,
	})

	got, err := s.FetchTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.NotNil(t, got[0].Image)
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/abc123-800x600.jpg", *got[0].Image)

	require.NotNil(t, got[1].Image)
	assert.Equal(t, "https://example.com/bob.png", *got[1].Image)
	assert.Equal(t, "bob", got[1].Author, "name is used when author is missing")
	assert.Equal(t, "B", got[1].AvatarInitial)

	assert.Nil(t, got[2].Image)
	assert.Equal(t, 5, got[2].Rating, "missing rating counts as five stars")
}

func TestFetchTestimonialsOrdering(t *testing.T) {
	// The store's ordering is not trusted; the result is re-sorted.
	s, _ := newTestService(map[string]string{
		testimonialsQuery: `[
			{"_id":"unranked-new","_createdAt":"2025-03-01T00:00:00Z","author":"A"},
			{"_id":"rank2","_createdAt":"2025-01-01T00:00:00Z","author":"B","order":2},
			{"_id":"unranked-old","_createdAt":"2024-12-01T00:00:00Z","author":"C"},
			{"_id":"rank1-old","_createdAt":"2024-01-01T00:00:00Z","author":"D","order":1},
			{"_id":"rank1-new","_createdAt":"2025-02-01T00:00:00Z","author":"E","order":1}
		]`,
	})

	got, err := s.FetchTestimonials(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"rank1-new", "rank1-old", "rank2", "unranked-new", "unranked-old"}, ids)
}

func TestFetchTestimonialsFallsBackToDateQuery(t *testing.T) {
	s, f := newTestService(map[string]string{
		testimonialsQuery:       `[]`,
		testimonialsByDateQuery: `[{"_id":"t1","_createdAt":"2025-01-01T00:00:00Z","author":"Ann"}]`,
	})

	got, err := s.FetchTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{testimonialsQuery, testimonialsByDateQuery}, f.calls)
}

func TestFetchTestimonialsEmpty(t *testing.T) {
	s, _ := newTestService(map[string]string{
		testimonialsQuery:       `[]`,
		testimonialsByDateQuery: `[]`,
	})

	got, err := s.FetchTestimonials(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got, "confirmed empty is an empty slice, not nil")
	assert.Empty(t, got)

	listed := s.Testimonials(context.Background())
	require.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestClampRating(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	assert.Equal(t, 5, clampRating(nil))
	assert.Equal(t, 1, clampRating(f(0)))
	assert.Equal(t, 1, clampRating(f(-3)))
	assert.Equal(t, 4, clampRating(f(4.4)))
	assert.Equal(t, 5, clampRating(f(4.5)))
	assert.Equal(t, 5, clampRating(f(9)))
}

func TestFAQsRankedFirst(t *testing.T) {
	s, _ := newTestService(map[string]string{
		faqQuery: `[
			{"question":"no rank"},
			{"question":"second","order":2},
			{"question":"first","order":1}
		]`,
	})

	got := s.FAQs(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Question)
	assert.Equal(t, "second", got[1].Question)
	assert.Equal(t, "no rank", got[2].Question)
	assert.Nil(t, got[2].Order)
}

func TestContactInfoShowFlags(t *testing.T) {
	s, _ := newTestService(map[string]string{
		contactInfoQuery: `{"address":"1 Main St","phone":"555-0100","showPhone":false}`,
	})

	got := s.ContactInfo(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "555-0100", got.Phone)
	assert.False(t, got.ShowPhone)
	assert.True(t, got.ShowAddress)
	assert.True(t, got.ShowEmail)
	assert.True(t, got.ShowHours)
}

func TestAboutPage(t *testing.T) {
	s, _ := newTestService(map[string]string{
		aboutPageQuery: `{
			"hero":{"title":"About","image":{"asset":{"_ref":"image-cafe-10x10-jpg"}}},
			"story":{"title":"Our Story","content":[
				{"_type":"block","style":"normal","children":[{"_type":"span","text":"Since 1998."}]}
			]},
			"values":[{"title":"Honesty"}]
		}`,
	})

	got := s.AboutPage(context.Background())
	assert.Equal(t, "About", got.Hero.Title)
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/cafe-10x10.jpg", got.Hero.Image)
	assert.Equal(t, "<p>Since 1998.</p>", got.Story.HTML)
	assert.Equal(t, "Since 1998.", got.Story.Text)
	assert.Equal(t, []models.Value{{Title: "Honesty"}}, got.Values)
	assert.Nil(t, got.ServiceAreas, "missing sections stay empty for the merge")
	assert.Equal(t, models.Expertise{}, got.Expertise)
}

func TestHomePage(t *testing.T) {
	s, _ := newTestService(map[string]string{
		homePageQuery: `{
			"hero":{"headline":"Doors","slides":[
				{"image":{"asset":{"_ref":"image-aa-10x10-jpg"}},"alt":"one"},
				{"image":null,"alt":"broken"}
			]},
			"doorsSection":{"title":"Doors","image":"https://example.com/d.jpg","link":"/doors"},
			"serviceAreasSection":{"areas":["Springfield"]}
		}`,
	})

	got := s.HomePage(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "Doors", got.Hero.Headline)
	require.Len(t, got.Hero.Slides, 1, "slides without an image are dropped")
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/aa-10x10.jpg", got.Hero.Slides[0].Image)
	assert.Equal(t, "https://example.com/d.jpg", got.Doors.Image)
	assert.Equal(t, []string{"Springfield"}, got.ServiceAreas.Areas)
	assert.NotNil(t, got.WhyChooseUs.Features)
	assert.NotNil(t, got.Gallery.Images)
}

func TestHomePageMissing(t *testing.T) {
	s, _ := newTestService(nil)
	assert.Nil(t, s.HomePage(context.Background()))
}

func TestServiceAreas(t *testing.T) {
	s, _ := newTestService(map[string]string{
		serviceAreasQuery: `[{"name":"Oak Grove"},{"name":"Lakewood","slug":"lakewood-il"}]`,
	})

	got := s.ServiceAreas(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "oak-grove", got[0].Slug)
	assert.Equal(t, "lakewood-il", got[1].Slug)
}

func TestQueryFunctionsIdempotent(t *testing.T) {
	s, _ := newTestService(map[string]string{
		productsQuery:     `[{"name":"Oak","category":"door","features":["a"]}]`,
		galleryQuery:      `[{"_id":"g1","image":"https://example.com/a.jpg"}]`,
		testimonialsQuery: `[{"_id":"t1","author":"Ann","image":{"asset":{"_ref":"image-a-1x1-png"}}}]`,
		faqQuery:          `[{"question":"q","order":1}]`,
		contactInfoQuery:  `{"phone":"1"}`,
		aboutPageQuery:    `{"values":[{"title":"v"}]}`,
		serviceAreasQuery: `[{"name":"x"}]`,
	})
	ctx := context.Background()

	first, err := s.FetchTestimonials(ctx)
	require.NoError(t, err)
	again, err := s.FetchTestimonials(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	p := s.Products(ctx)
	p[0].Features[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.Products(ctx)[0].Features)

	assert.Equal(t, s.GalleryItems(ctx), s.GalleryItems(ctx))
	assert.Equal(t, s.FAQs(ctx), s.FAQs(ctx))
	assert.Equal(t, s.ContactInfo(ctx), s.ContactInfo(ctx))
	assert.Equal(t, s.AboutPage(ctx), s.AboutPage(ctx))
	assert.Equal(t, s.ServiceAreas(ctx), s.ServiceAreas(ctx))
	assert.Equal(t, s.HomePage(ctx), s.HomePage(ctx))
}

func TestRecordsQueryMetrics(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	s := NewService(&fakeFetcher{responses: map[string]string{faqQuery: `[]`}}, testIdentity, m)

	s.FAQs(context.Background())
	s.FAQs(context.Background())

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "content_queries_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["type"] == TypeFAQ && labels["outcome"] == metrics.OutcomeEmpty {
				found = true
				assert.InDelta(t, 2, metric.GetCounter().GetValue(), 0)
			}
		}
	}
	assert.True(t, found, "expected an empty-outcome counter for faq")
}

func TestServiceOverHTTP(t *testing.T) {
	mt := httpmock.NewMockTransport()
	client, err := sanity.New(sanity.Options{
		ProjectID:  "abc123",
		Dataset:    "production",
		HTTPClient: &http.Client{Transport: mt},
	})
	require.NoError(t, err)

	mt.RegisterResponder(http.MethodGet, `=~^https://abc123\.api\.sanity\.io/v2024-01-01/data/query/production`,
		func(req *http.Request) (*http.Response, error) {
			if req.URL.Query().Get("query") == testimonialsQuery {
				return httpmock.NewStringResponse(http.StatusOK,
					`{"result":[{"_id":"t1","author":"Ann","image":{"asset":{"_ref":"image-abc123-800x600-jpg"}}}]}`), nil
			}
			return httpmock.NewStringResponse(http.StatusInternalServerError, `{"error":{"description":"boom"}}`), nil
		})

	s := NewService(client, client.Identity(), nil)

	got, err := s.FetchTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Image)
	assert.Equal(t, "https://cdn.sanity.io/images/abc123/production/abc123-800x600.jpg", *got[0].Image)

	assert.Empty(t, s.FAQs(context.Background()), "server errors yield the empty value")
}
