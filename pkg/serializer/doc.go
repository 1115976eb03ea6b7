// Package serializer reads and writes craftgrid documents in JSON, YAML and
// a flattened table format.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer func() {
//		if closer, ok := w.(serializer.Closer); ok {
//			_ = closer.Close()
//		}
//	}()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Reading, with the format taken from the file extension:
//
//	doc, err := serializer.FromFile[recipe.Document](ctx, "recipes.yaml")
//
// FromFile also accepts http:// and https:// URLs, fetched with an
// HttpReader bound to ctx.
//
// For HTTP handlers, RespondJSON buffers the encoding before writing headers
// so an encoding failure never produces a partial response, and
// FormatFromContentType picks the decoder for a request body.
package serializer
