// Package logger provides structured logging for the inventario service
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("inventario")
//	log.Info("asset created", logger.Fields("asset_id", id))
package logger
