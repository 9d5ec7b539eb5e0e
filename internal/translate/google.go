package translate

import (
	"context"
	"errors"

	gtranslate "cloud.google.com/go/translate"
	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Google translates through the Cloud Translation API using application
// default credentials.
type Google struct {
	client *gtranslate.Client
}

// NewGoogle builds a Google translator. Close must be called on shutdown.
func NewGoogle(ctx context.Context) (*Google, error) {
	client, err := gtranslate.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Google{client: client}, nil
}

// Translate converts text into targetLang, hinting the source language when
// detection is confident enough to be worth forwarding.
func (g *Google) Translate(ctx context.Context, text, targetLang string) (string, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", &Error{TargetLang: targetLang, Err: err}
	}

	opts := &gtranslate.Options{Format: gtranslate.Text}
	if src, ok := sourceHint(text); ok {
		opts.Source = src
	}

	results, err := g.client.Translate(ctx, []string{text}, target, opts)
	if err != nil {
		return "", &Error{TargetLang: targetLang, Err: err}
	}
	if len(results) == 0 {
		return "", &Error{TargetLang: targetLang, Err: errors.New("empty response")}
	}
	return results[0].Text, nil
}

// Close releases the underlying API client.
func (g *Google) Close() error {
	return g.client.Close()
}

// sourceHint detects the language of text. Unreliable detections are
// discarded so the API falls back to its own detection.
func sourceHint(text string) (language.Tag, bool) {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return language.Und, false
	}
	tag, err := language.Parse(info.Lang.Iso6391())
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
