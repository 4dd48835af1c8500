package text

import (
	"errors"
	"fmt"
)

// ErrNotProvided is matched by every ConfigurationError.
var ErrNotProvided = errors.New("text defaults read outside of a provider")

// ConfigurationError reports a text consumer rendered with no established
// scope above it. It is a composition bug: wrap the tree in a provider.
type ConfigurationError struct {
	// Consumer names the component that attempted the read, if known.
	Consumer string
}

func (e *ConfigurationError) Error() string {
	if e.Consumer == "" {
		return "text: must be used within a TextProvider"
	}
	return fmt.Sprintf("text: %s must be used within a TextProvider", e.Consumer)
}

// Is makes errors.Is(err, ErrNotProvided) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrNotProvided
}
