package model

// Cluster helpers name the top-level slices of a cluster document.

// ID returns the document identifier, falling back to its name.
func (o Object) ID() string {
	if id := o.String("_id"); id != "" {
		return id
	}
	return o.String("name")
}

// Caches returns the cache configurations of a cluster document.
func (o Object) Caches() []Object { return o.Objects("caches") }

// Igfss returns the file system configurations of a cluster document.
func (o Object) Igfss() []Object { return o.Objects("igfss") }

// Domains returns the domain models attached to a cache document.
func (o Object) Domains() []Object { return o.Objects("domains") }
