//
// newsdesk
// ========
// A JSON REST service over a small news schema: topics, articles, comments
// and users, backed by PostgreSQL.
//
// Boot the server:
// ----------------
// $ go run .
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/api/topics
// {"topics":[{"slug":"coding","description":"Code is love, code is life"}]}
//
// $ curl 'http://localhost:3333/api/articles?topic=coding&sort_by=votes&order=asc'
// {"articles":[...]}
//
// $ curl -X PATCH -d '{"inc_votes":-100}' http://localhost:3333/api/articles/4
// {"patchedArticle":{...,"votes":-100}}
//
// Passing -routes generates markdown documentation for the router.
//
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/comment"
	"github.com/SergeyParamoshkin/newsdesk/internal/config"
	"github.com/SergeyParamoshkin/newsdesk/internal/database"
	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/topic"
	"github.com/SergeyParamoshkin/newsdesk/internal/user"
)

const ServiceName = "newsdesk"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

//go:embed endpoints.json
var endpointsJSON []byte

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *config.Config
	completed   *metric.BoundInt64Counter
}

func main() {
	routes := flag.Bool("routes", false, "Generate router documentation")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw("load config", "error", err)
	}

	a := &App{
		sugarLogger: sugar,
		config:      cfg,
	}

	if *routes {
		r := a.routes(
			article.NewResource(article.NewStore(nil), sugar),
			comment.NewResource(comment.NewStore(nil), sugar),
			topic.NewResource(topic.NewStore(nil), sugar),
			user.NewResource(user.NewStore(nil), sugar),
		)
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/SergeyParamoshkin/newsdesk",
			Intro:       "newsdesk generated router docs.",
		}))

		return
	}

	db, err := database.Open(cfg.Database.URL, database.Pool{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		sugar.Fatalw("open database", "error", err)
	}
	defer db.Close()

	promConfig := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(promConfig.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(promConfig, c)
	if err != nil {
		sugar.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("service", ServiceName),
	}
	completed := metric.Must(meter).NewInt64Counter(
		"http/server/completed_count",
		metric.WithDescription("Count of completed requests"),
	).Bind(labels...)
	defer completed.Unbind()
	a.completed = &completed

	r := a.routes(
		article.NewResource(article.NewStore(db), sugar),
		comment.NewResource(comment.NewStore(db), sugar),
		topic.NewResource(topic.NewStore(db), sugar),
		user.NewResource(user.NewStore(db), sugar),
	)

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	go func() {
		if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	if err := http.ListenAndServe(cfg.Server.DiagAddr, diagRouter); err != nil {
		a.sugarLogger.Errorw(err.Error())
	}
}

// routes assembles the public router. The diag listener (metrics) is wired
// separately in main.
func (a *App) routes(
	articles *article.Resource,
	comments *comment.Resource,
	topics *topic.Resource,
	users *user.Resource,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(a.CountCompleted)

	// Unknown paths get their own message, distinct from entity not-found.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if err := render.Render(w, r, errresponse.ErrPathNotFound); err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping")

		if _, err := w.Write([]byte("pong")); err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", a.GetEndpoints)

		r.Get("/topics", topics.List)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Get("/{username}", users.Get)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articles.List)

			r.Route("/{articleID}", func(r chi.Router) {
				r.Patch("/", articles.UpdateVotes)

				r.Group(func(r chi.Router) {
					r.Use(articles.Ctx) // load the *Article on the request context
					r.Get("/", articles.Get)
					r.Get("/comments", comments.ListByArticle)
					r.Post("/comments", comments.Create)
				})
			})
		})

		r.Delete("/comments/{commentID}", comments.Delete)
	})

	return r
}

func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}

// CountCompleted increments the completed-request counter once per request.
func (a *App) CountCompleted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		if a.completed != nil {
			a.completed.Add(r.Context(), 1)
		}
	})
}

type endpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

func (rd *endpointsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// GetEndpoints serves the embedded self-documentation for GET /api.
func (a *App) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	if err := render.Render(w, r, &endpointsResponse{Endpoints: endpointsJSON}); err != nil {
		a.sugarLogger.Errorw(err.Error())
	}
}
