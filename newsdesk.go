// Package newsdesk turns news articles into publication-ready stories.
// It extracts the main text of a web page, has a language model rewrite or
// proofread it, asks an image model for an illustration, and stores the
// resulting image on local disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gemini/).
package newsdesk
