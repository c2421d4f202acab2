package placeholder

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/parkour/leaderboard"
	"github.com/teranos/parkour/logger"
)

// DefaultNotAvailable is returned for rank queries that have no answer.
const DefaultNotAvailable = "N/A"

// StandingsSource yields the current leaderboard snapshot.
// *leaderboard.Board and *leaderboard.Persistent implement it.
type StandingsSource interface {
	Standings() leaderboard.Standings
}

// Context is who is asking. Session is nil when the viewer has no run in
// progress; Viewer is uuid.Nil for console requests.
type Context struct {
	Viewer  uuid.UUID
	Session Session
}

// Options configures a Resolver.
type Options struct {
	Version      string
	NotAvailable string
	Logger       *zap.SugaredLogger
}

// Resolver answers tokens. It is safe for concurrent use; each call works
// on one standings snapshot.
type Resolver struct {
	source       StandingsSource
	version      string
	notAvailable string
	logger       *zap.SugaredLogger
}

// NewResolver creates a Resolver over source.
func NewResolver(source StandingsSource, opts Options) *Resolver {
	na := opts.NotAvailable
	if na == "" {
		na = DefaultNotAvailable
	}
	return &Resolver{
		source:       source,
		version:      opts.Version,
		notAvailable: na,
		logger:       logger.OrNop(opts.Logger),
	}
}

// Resolve parses and answers token. The boolean is false when the token
// has no value for this context (unknown name, or a session query without
// a session). Only malformed rank tokens are errors.
func (r *Resolver) Resolve(ctx Context, token string) (string, bool, error) {
	tok, err := ParseToken(token)
	if err != nil {
		r.logger.Debugw("Rejected placeholder", logger.FieldToken, token, logger.FieldError, err)
		return "", false, err
	}
	v, ok := r.ResolveToken(ctx, tok)
	return v, ok, nil
}

// ResolveToken answers an already parsed token.
func (r *Resolver) ResolveToken(ctx Context, tok Token) (string, bool) {
	switch tok.Form {
	case FormLiteral:
		if tok.NeedsSession() {
			if ctx.Session == nil {
				return "", false
			}
			return sessionValue(ctx.Session, tok.Kind), true
		}
		return r.global(ctx, tok.Kind)
	case FormRankQuery:
		return r.rank(tok), true
	default:
		return "", false
	}
}

func sessionValue(s Session, kind Kind) string {
	switch kind {
	case KindScore:
		return strconv.Itoa(s.Score())
	case KindTime:
		return s.Time()
	case KindBlockLead:
		return strconv.Itoa(s.BlockLead())
	case KindStyle:
		return s.Style()
	case KindTimePreference:
		return s.TimePreference()
	case KindScoreboard:
		return strconv.FormatBool(s.ShowScoreboard())
	case KindDifficulty:
		return formatDifficulty(s.Difficulty())
	case KindDifficultyText:
		return DifficultyLabel(s.Difficulty())
	}
	return ""
}

func (r *Resolver) global(ctx Context, kind Kind) (string, bool) {
	switch kind {
	case KindVersion:
		return r.version, true
	case KindHighScore:
		if ctx.Viewer == uuid.Nil {
			return "", false
		}
		e, _ := r.source.Standings().Lookup(ctx.Viewer)
		return strconv.Itoa(e.Score), true
	case KindLeader:
		e, ok := r.source.Standings().EntryAt(1)
		if !ok || e.Value.Name == "" {
			return r.notAvailable, true
		}
		return e.Value.Name, true
	case KindLeaderScore:
		score, ok := r.source.Standings().ValueAt(1)
		if !ok {
			return r.notAvailable, true
		}
		return strconv.Itoa(score), true
	}
	return "", false
}

func (r *Resolver) rank(tok Token) string {
	e, ok := r.source.Standings().EntryAt(tok.Rank)
	if !ok {
		return r.notAvailable
	}
	switch tok.Kind {
	case KindPlayerRank:
		if e.Value.Name == "" {
			return r.notAvailable
		}
		return e.Value.Name
	case KindScoreRank:
		return strconv.Itoa(e.Score)
	case KindTimeRank:
		if e.Value.Time == "" {
			return r.notAvailable
		}
		return e.Value.Time
	}
	return r.notAvailable
}
