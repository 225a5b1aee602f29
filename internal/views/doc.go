// Package views renders the admin pages as templ components.
//
// Components are built with templ.ComponentFunc and write escaped HTML
// directly; every user-controlled string passes through templ.EscapeString.
// Page strings are translated with the printer stored in the render context
// (see locale.WithPrinter).
package views
