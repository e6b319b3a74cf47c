// Package events delivers session notifications to subscribers without
// blocking the producing component.
package events
