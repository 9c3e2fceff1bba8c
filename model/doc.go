// Package model defines the persisted entity types of the inventario
// service. Request and response DTOs live with the HTTP handlers; these
// structs are what the stores persist.
package model
