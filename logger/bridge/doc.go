// Package bridge adapts third-party structured loggers to logger.Logger.
//
// Each adapter logs the already formatted line at info level, so code
// written against logger.Logger can run inside a program that has
// standardised on zap, zerolog or logrus:
//
//	log := bridge.Zap(zapLogger)
//	logger.Printf(log, "loaded {} entries", n)
//
// The adapters add no timestamp of their own; the backend supplies it.
package bridge
