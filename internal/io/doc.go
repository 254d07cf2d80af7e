// Package ioutils provides file system and image processing utilities.
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames
// before renaming files from tag values:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
// The ImageService bounds cover art dimensions before embedding:
//
//	svc := ioutils.NewImageService()
//	resized, mime, err := svc.ResizeToBound(ctx, imageData, 500)
package ioutils
