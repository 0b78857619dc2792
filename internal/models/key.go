package models

import (
	"fmt"
	"strconv"
)

// Kind identifies an entity collection
type Kind string

const (
	KindUser       Kind = "USER"
	KindWaste      Kind = "WASTE"
	KindCollection Kind = "COLLECTION"
	KindReminder   Kind = "REMINDER"
	KindLocation   Kind = "LOCATION"
	KindTip        Kind = "TIP"
	KindResource   Kind = "RESOURCE"
	KindStatistics Kind = "STATS"
)

// EntityKey carries the entity kind next to its id so that storage backends
// sharing a single keyspace never need to parse the kind back out of a string.
type EntityKey struct {
	Kind Kind
	ID   int64
}

// Key builds an EntityKey
func Key(kind Kind, id int64) EntityKey {
	return EntityKey{Kind: kind, ID: id}
}

// String renders the key as "<KIND>#<id>"
func (k EntityKey) String() string {
	return fmt.Sprintf("%s#%s", k.Kind, strconv.FormatInt(k.ID, 10))
}
