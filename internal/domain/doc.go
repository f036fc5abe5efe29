// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (results/parameters) and contracts (interfaces) only.
package domain
