package index

import "os"

// openForMmap opens path for the read-only mapping OpenFile sets up.
func openForMmap(path string) (*os.File, error) {
	return os.Open(path)
}
