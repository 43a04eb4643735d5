// Package domain holds the persisted entities. Relations are plain foreign-key columns;
// there are no navigation fields, so every traversal is an explicit repo query.
package domain

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{
		&Project{},
		&Channel{},
		&Category{},
		&ChannelCategory{},
		&Video{},
		&TranscriptTopic{},
		&Script{},
	}
}
