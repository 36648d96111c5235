// Package bridgehandler forwards entries into other logging libraries.
// Each bridge is a handler.Handler, so a logger.Manager can install it as
// its stream and every registered logger then writes through zap,
// hclog, zerolog or logrus:
//
//	z, _ := zap.NewProduction()
//	_ = m.SetStream(bridgehandler.NewZap(z))
//
// The level set on a bridge filters before the target library sees the
// entry; the target's own level applies afterwards. Bridges accept a
// formatter to satisfy handler.Handler but the target library renders
// the output. Closing a bridge flushes the target where the library
// supports it and never closes the target's writer.
//
// CRITICAL has no direct counterpart in these libraries. It maps to
// zap's DPanic level (written through the core, so it never panics),
// to hclog's Error level, and to the fatal level of zerolog and logrus
// through calls that do not exit the process.
package bridgehandler
