package client

import (
	"context"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/engine"
	"github.com/mmrzaf/tablefaker/internal/logging"
	"github.com/mmrzaf/tablefaker/internal/session"
	"github.com/mmrzaf/tablefaker/internal/validation"
)

// Pooler creates one initialized Client per table and keeps it for its own
// lifetime. It is not safe for concurrent use.
type Pooler struct {
	engine        engine.Engine
	session       session.Session
	defaultSchema string
	logger        *logging.Logger
	clients       map[string]*Client
}

type PoolerOption func(*Pooler)

func WithDefaultSchema(schema string) PoolerOption {
	return func(p *Pooler) { p.defaultSchema = schema }
}

func WithPoolerLogger(l *logging.Logger) PoolerOption {
	return func(p *Pooler) { p.logger = l }
}

func NewPooler(e engine.Engine, sess session.Session, opts ...PoolerOption) *Pooler {
	p := &Pooler{
		engine:        e,
		session:       sess,
		defaultSchema: domain.DefaultSchema,
		logger:        logging.Nop(),
		clients:       make(map[string]*Client),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetClient returns the client for "schema.table" or "table", creating and
// initializing it on first use. Clients that fail to initialize are not
// kept.
func (p *Pooler) GetClient(ctx context.Context, identifier string) (*Client, error) {
	schema, table, err := validation.SplitIdentifier(identifier, p.defaultSchema)
	if err != nil {
		return nil, err
	}

	key := schema + "." + table
	if c, ok := p.clients[key]; ok {
		p.logger.Debugw("pooler.hit", map[string]any{"table": key})
		return c, nil
	}

	c := NewClient(p.engine, table, schema, WithLogger(p.logger))
	if err := c.Initialize(ctx, p.session); err != nil {
		return nil, err
	}
	p.clients[key] = c
	p.logger.Debugw("pooler.created", map[string]any{"table": key})
	return c, nil
}

// Identifiers lists the cached clients.
func (p *Pooler) Identifiers() []string {
	out := make([]string, 0, len(p.clients))
	for key := range p.clients {
		out = append(out, key)
	}
	return out
}
