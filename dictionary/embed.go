package dictionary

import (
	_ "embed"
	"fmt"
)

// DefaultName names the bundled English word list.
const DefaultName = "wordninja.words.txt.gz"

//go:embed data/words.txt.gz
var defaultData []byte

// Default returns the bundled English word list.
func Default() (*List, error) {
	list, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("bundled dictionary: %w", err)
	}
	return list, nil
}
