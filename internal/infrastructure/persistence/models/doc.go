// Package models contains the GORM persistence models and their
// conversions to and from domain entities. Domain aggregates never
// carry GORM tags; these models are the only place the database schema
// is described in code.
package models
