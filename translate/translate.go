// Package translate formats user-facing messages for the detected locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	once    sync.Once
)

// detect picks the printer from the system locales, falling back to en-US.
func detect() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("acc8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Use overrides the detected locale with the given language tags.
func Use(tags ...string) language.Tag {
	once.Do(func() {})

	tag := message.MatchLanguage(tags...)
	printer = message.NewPrinter(tag)

	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(detect)
	return printer.Sprintf(key, args...)
}
