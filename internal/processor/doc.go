// Package processor contains the core logic of a run. It loads the
// reference and translation documents, reconciles them, optionally fills
// placeholders with suggestions, and writes the updated document.
package processor
