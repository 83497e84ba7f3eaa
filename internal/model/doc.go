package model

// Package model defines the data passed between the UI shell and the download
// worker: the options record of a run, the events streamed back to the UI, and
// the engine-neutral progress record produced by the download engine.
