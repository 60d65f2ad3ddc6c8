// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApplicationPlatform is the predicate function for applicationplatform builders.
type ApplicationPlatform func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// DuplicatePair is the predicate function for duplicatepair builders.
type DuplicatePair func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
