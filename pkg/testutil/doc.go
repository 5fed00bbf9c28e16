// Package testutil provides test support for the teardown packages: a
// capturing diagnostic sink and small disposer fixtures used to assert
// invocation counts, error isolation, and panic containment.
package testutil
