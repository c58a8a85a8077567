package integrations

import "github.com/kerbaras/fictions/pkg/data"

// Publisher turns a fetched fiction into a file and returns its path.
type Publisher interface {
	Publish(fiction *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error)
}
