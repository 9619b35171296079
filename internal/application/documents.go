package application

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	repo "github.com/suugaanle/qaamuus/internal/domain/repository"
)

// Storage keys, one JSON document per logical store. The names are kept
// stable so an existing data set survives upgrades.
const (
	keyEntries        = "somali_dictionary_entries"
	keyUsers          = "somali_dictionary_users"
	keyCurrentUser    = "somali_dictionary_current_user"
	keyCodes          = "somali_dictionary_verification_codes"
	keyVerifiedEmails = "somali_dictionary_verified_emails"
	keyContributions  = "somali_dictionary_contributions"
)

// loadCollection reads and decodes a whole collection document. Any storage
// or decode failure is logged and degraded to an empty slice; callers never
// see an error from a read.
func loadCollection[T any](ctx context.Context, store repo.DocumentStore, key string, logger *logrus.Logger) []T {
	doc, err := store.Load(ctx, key)
	if err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Warn("load document failed")
		}
		return nil
	}
	if doc == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Warn("corrupt document, treating as empty")
		}
		return nil
	}
	return items
}

// saveCollection encodes and writes a whole collection document. Failures
// are logged and returned so mutating operations can report a success flag.
func saveCollection[T any](ctx context.Context, store repo.DocumentStore, key string, items []T, logger *logrus.Logger) error {
	doc, err := json.Marshal(items)
	if err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Error("encode document failed")
		}
		return err
	}
	if err := store.Save(ctx, key, doc); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("key", key).Warn("save document failed")
		}
		return err
	}
	return nil
}
