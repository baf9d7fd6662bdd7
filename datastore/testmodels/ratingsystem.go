/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds sample entities shared by the datastore tests.
package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/fields"
)

// RatingSystemTag is the type tag stored with every RatingSystem.
const RatingSystemTag = "RatingSystem"

// RatingSystemIndexMap keys rating systems by their identifier.
var RatingSystemIndexMap = map[string]string{
	"PK": "RATINGSYSTEM#{Id}",
	"SK": "RATINGSYSTEM#{Id}",
}

type RatingSystem struct {

	// Timestamp when the rating system was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime

	// A description of the rating system.
	Description *string

	// Unique identifier for the rating system.
	ID *string

	// Name of the rating system.
	Name *string

	// site Url
	SiteURL string

	// Timestamp when the rating system was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime
}

func (r *RatingSystem) DefineFields(c *fields.Collector) {
	fields.Field(c, "Id", &r.ID)
	fields.Field(c, "Name", &r.Name)
	fields.Field(c, "Description", &r.Description)
	fields.Field(c, "SiteUrl", &r.SiteURL)
	fields.Field(c, "CreatedAt", &r.CreatedAt)
	fields.Field(c, "UpdatedAt", &r.UpdatedAt)
}

// Rating is a player's rating inside a rating system.
type Rating struct {
	SystemID string
	PlayerID string
	Value    float64
	Games    int
}

func (r *Rating) DefineFields(c *fields.Collector) {
	fields.Field(c, "SystemId", &r.SystemID)
	fields.Field(c, "PlayerId", &r.PlayerID)
	fields.Field(c, "Value", &r.Value)
	fields.Field(c, "Games", &r.Games)
}

// RatingIndexMap stores ratings under their rating system partition.
var RatingIndexMap = map[string]string{
	"PK": "RATINGSYSTEM#{SystemId}",
	"SK": "RATING#{PlayerId}",
}

// Register installs the converters and index maps of the test models.
func Register(e *typebridge.Exporter) {
	typebridge.RegisterFields[RatingSystem](e, RatingSystemTag)
	typebridge.RegisterIndexMap[RatingSystem](e, RatingSystemIndexMap)
	typebridge.RegisterFields[Rating](e, "Rating")
	typebridge.RegisterIndexMap[Rating](e, RatingIndexMap)
}
