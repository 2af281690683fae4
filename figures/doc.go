// Package figures renders otp.Figures: PNG line charts, CSV data files for external tools, and
// helpers to fan out to several renderers and log what was written.
// Renderers create their output directory as needed.
package figures
