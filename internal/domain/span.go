package domain

import (
	"context"
	"time"
)

// Span times one stage of a reconciliation run (load, join, score...)
type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *int64 `json:"elapsedMs"`
}

type profileKey struct{}

// Profile is simply a list of spans
type Profile struct {
	Spans   []*Span `json:"spans"`
	startTs time.Time
	TotalMs *int64 `json:"totalMs"`
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func ContextWithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// ProfileFromContext returns nil when the caller did not ask for profiling
func ProfileFromContext(ctx context.Context) *Profile {
	p, _ := ctx.Value(profileKey{}).(*Profile)
	return p
}

func (p *Profile) End() {
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// StartNewSpan ends the last span and begins a new one. Safe to call on a
// nil profile. Not thread safe.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if p == nil {
		return newSpan, newSpan.End
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}
