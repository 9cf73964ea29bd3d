// Package sitechat answers questions about a website and a folder of
// documents. It crawls the site, extracts text from the documents, merges
// both into a bounded context and hands that context, together with the
// user's question, to a text-completion service.
//
// This package contains domain types, interfaces and the pure functions that
// operate on them, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, gemini/, gin/).
package sitechat
