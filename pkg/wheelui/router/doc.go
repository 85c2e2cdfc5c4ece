// Package router provides bounded stack navigation between screens.
//
// Screens are registered once, up front, and referred to by Handle
// afterwards. The navigation stack is a fixed array of handles whose
// bottom slot always holds the home screen, so navigation can never
// leave the device without something to draw.
//
// # Basic Usage
//
//	r := router.New[Screen](home, 4, logger)
//
//	settings := r.Register(settingsScreen)
//	volume := r.Register(volumeScreen)
//
//	r.Push(settings) // home -> settings
//	r.Push(volume)   // home -> settings -> volume
//	r.Pop()          // home -> settings
//	r.Show(volume)   // home -> volume
//	r.Pop()          // home
//	r.Pop()          // still home
//
// # Failure Handling
//
// Navigation never returns an error. Pushing past the configured depth,
// pushing an unknown handle, or popping the home screen leaves the stack
// as it was; the first two are logged as warnings so they show up while
// developing a menu tree.
package router
