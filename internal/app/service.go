package app

import (
	"context"
	"io"
	"time"

	"github.com/nleiva/contentscale/internal/analyst"
	"github.com/nleiva/contentscale/internal/attach"
	"github.com/nleiva/contentscale/internal/catalog"
	"github.com/nleiva/contentscale/internal/content"
	"github.com/nleiva/contentscale/internal/translate"
)

const defaultBatchLimit = 4

// Config wires a Service. Nil collaborators get offline defaults.
type Config struct {
	Catalog     *catalog.Catalog
	Translator  *translate.Adapter
	Synthesizer *content.Synthesizer
	Analyst     *analyst.Analyst
	Extractor   *attach.Extractor

	GenerationDelay time.Duration
	ReplyDelay      time.Duration

	// BatchLimit bounds concurrent generations in GenerateAll.
	BatchLimit int

	// ActivitySink receives every session's events as JSON lines.
	ActivitySink io.Writer
}

// Service holds the collaborators shared by every session.
type Service struct {
	catalog         *catalog.Catalog
	translator      *translate.Adapter
	synth           *content.Synthesizer
	analyst         *analyst.Analyst
	extractor       *attach.Extractor
	generationDelay time.Duration
	replyDelay      time.Duration
	batchLimit      int
	sink            io.Writer
	now             func() time.Time
}

// NewService creates a service from cfg.
func NewService(cfg Config) *Service {
	s := &Service{
		catalog:         cfg.Catalog,
		translator:      cfg.Translator,
		synth:           cfg.Synthesizer,
		analyst:         cfg.Analyst,
		extractor:       cfg.Extractor,
		generationDelay: cfg.GenerationDelay,
		replyDelay:      cfg.ReplyDelay,
		batchLimit:      cfg.BatchLimit,
		sink:            cfg.ActivitySink,
		now:             time.Now,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.translator == nil {
		s.translator = translate.New(translate.Config{Catalog: s.catalog})
	}
	if s.synth == nil {
		s.synth = content.NewSynthesizer(s.catalog, s.translator)
	}
	if s.analyst == nil {
		s.analyst = analyst.New(nil, 0)
	}
	if s.extractor == nil {
		s.extractor = attach.NewExtractor(0)
	}
	if s.batchLimit <= 0 {
		s.batchLimit = defaultBatchLimit
	}
	return s
}

// Catalog returns the catalog sessions validate against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Integrations reports which external services have credentials.
type Integrations struct {
	Translation bool `json:"translation"`
	Analyst     bool `json:"analyst"`
}

// Integrations returns the live/mock status of the external services.
func (s *Service) Integrations() Integrations {
	return Integrations{Translation: s.translator.Live(), Analyst: s.analyst.Live()}
}

// NewSession creates a session in its initial state.
func (s *Service) NewSession(id string) *Session {
	return &Session{
		ID:       id,
		svc:      s,
		store:    NewStore(s.catalog, NewState(s.now())),
		activity: NewActivity(id, s.sink),
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
