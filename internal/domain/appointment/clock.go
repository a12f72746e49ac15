package appointment

import "time"

// Clock é injetado nos use cases para os testes fixarem o "agora"
type Clock interface {
	Now() time.Time
}
