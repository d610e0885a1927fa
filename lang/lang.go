// Package lang holds the display language of a rendered page.
//
// A State is created per request, starts in Arabic and is reachable through
// the request context. Code asking for it outside such a scope gets
// ErrNoLanguageScope.
package lang

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"

	Default = Arabic
)

var (
	ErrUnsupportedLanguage = errors.New("lang: unsupported language")
	ErrNoLanguageScope     = errors.New("lang: no language state in scope")
)

// All lists the supported languages in toggle order.
var All = []Language{Arabic, English}

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// Parse maps a language tag such as "en", "en-GB" or "ar-EG" to a
// supported Language.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnsupportedLanguage
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", ErrUnsupportedLanguage
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", ErrUnsupportedLanguage
	}
	return All[idx], nil
}

func (l Language) Valid() bool {
	return l == Arabic || l == English
}

// Dir is the HTML text direction.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) String() string {
	return string(l)
}

// State is the active language plus the observers of its changes.
type State struct {
	mu        sync.RWMutex
	current   Language
	nextID    int
	observers map[int]func(Language)
}

func NewState() *State {
	return &State{current: Default, observers: map[int]func(Language){}}
}

func (s *State) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLanguage switches the active language and notifies observers.
// Setting the active language again is a no-op.
func (s *State) SetLanguage(l Language) error {
	if !l.Valid() {
		return ErrUnsupportedLanguage
	}

	s.mu.Lock()
	if s.current == l {
		s.mu.Unlock()
		return nil
	}
	s.current = l
	observers := make([]func(Language), 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(l)
	}
	return nil
}

// Subscribe registers fn to be called after every language change, in
// subscription order. The returned func removes it.
func (s *State) Subscribe(fn func(Language)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

type contextKey struct{}

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(contextKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrNoLanguageScope
	}
	return s, nil
}
