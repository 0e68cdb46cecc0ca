// Package filehandler provides a sink that writes log lines to a file
// with size-based rotation.
//
// Rotation, backup retention and compression are delegated to
// lumberjack. Color sequences are always stripped before writing, so the
// file holds plain text.
//
//	fs, err := filehandler.NewFileSink(filehandler.FileConfig{
//	    Filename:   "/var/log/device.log",
//	    MaxSizeMB:  1,
//	    MaxBackups: 3,
//	})
//	if err != nil {
//	    return err
//	}
//	defer fs.Close()
package filehandler
