// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// Issue is the predicate function for issue builders.
type Issue func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// ProblemSpec is the predicate function for problemspec builders.
type ProblemSpec func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// ScenarioSuite is the predicate function for scenariosuite builders.
type ScenarioSuite func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// WorldModel is the predicate function for worldmodel builders.
type WorldModel func(*sql.Selector)
