// Package models defines the aura record and its Schema.
package models
