// Package vault pushes backups of the shop outside of the local data directory.
//
// A vault receives the exported state document and returns a key the owner
// can note down to find the backup again. Vaults are peripheral: a failure is
// reported to the user and never touches the shop state.
package vault

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Vault stores backup documents.
type Vault interface {
	// Push stores doc under a name and returns the key of the stored backup.
	Push(ctx context.Context, name string, doc []byte) (key string, err error)
}

// KeyPrefix prefixes the keys returned by the simulated vault.
const KeyPrefix = "BTM-VAULT-"

// Simulated is a vault that only pretends to upload: it waits for Delay and
// returns a fresh key. Documents are kept in memory for inspection.
type Simulated struct {
	Delay  time.Duration
	Logger *zap.Logger

	Pushed map[string][]byte
}

// NewSimulated returns a simulated vault with the usual two second upload delay.
func NewSimulated(logger *zap.Logger) *Simulated {
	return &Simulated{Delay: 2 * time.Second, Logger: logger}
}

func (s *Simulated) Push(ctx context.Context, name string, doc []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.Delay):
	}
	key := KeyPrefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	if s.Pushed == nil {
		s.Pushed = make(map[string][]byte)
	}
	s.Pushed[key] = append([]byte(nil), doc...)
	logger(s.Logger).Info("backup pushed to simulated vault", zap.String("name", name), zap.String("key", key), zap.Int("bytes", len(doc)))
	return key, nil
}

// mailBodyLimit is the number of characters of the document put in a share e-mail.
const mailBodyLimit = 1500

// MailtoLink returns a mailto URL sharing the beginning of the document, for
// owners without any vault configured.
func MailtoLink(doc []byte) string {
	body := []rune(string(doc))
	if len(body) > mailBodyLimit {
		body = body[:mailBodyLimit]
	}
	q := url.Values{}
	q.Set("subject", "Biashara Master Data Backup")
	q.Set("body", "Database snapshot below (Copy/Paste):\n\n"+string(body)+"...")
	// mail clients expect %20, not +, for spaces
	return "mailto:?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
