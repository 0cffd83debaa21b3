// Package postcraft turns long-form blog content into a post tailored to a
// single social platform. It splits fetched text into a title and body,
// resolves the target platform's generation policy, and assembles a
// deterministic instruction for a text-generation service.
//
// This package contains domain types, the pure core and collaborator
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., gemini/, rod/, trafilatura/).
package postcraft
