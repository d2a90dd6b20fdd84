package entity

import (
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
)

// Center is an antivenom distribution center. Records are loaded from
// the center store and treated as read-only; optional fields are empty
// strings when the dataset has no value.
type Center struct {
	ID           string
	Name         string
	Municipality string
	UF           string
	Region       string
	Coordinate   valueobject.Coordinate
	SerumTypes   []string
	Address      string
	Phone        string
	CNES         string
	CareType     string
	CareInfo     string
}

// HasSerumType reports whether the center stocks the given serum type.
// Matching is exact and case-sensitive.
func (c *Center) HasSerumType(serumType string) bool {
	for _, t := range c.SerumTypes {
		if t == serumType {
			return true
		}
	}
	return false
}
