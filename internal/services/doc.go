// Package services wires the recognizers into a detection pipeline.
//
// A Detector opens a TIFF container, offers it to each recognizer in turn
// and keeps the first slide that is accepted. A recognizer that returns
// bifslide.ErrFormatNotSupported passes the file to the next one; any other
// error ends detection.
package services
