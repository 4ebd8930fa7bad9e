// Package demo contains the views for the viewloop demo application.
//
// Three views exercise the runtime end to end: a menu (cursor-driven
// navigation, deferred swaps to the other views), a counter (plain stateful
// view with escape-to-menu navigation), and an editor (a Bubble Tea
// textinput hosted through the teaview adapter). Every view holds the
// Runtime it runs under, so its event handler can stop the application or
// request navigation - the shared-context pattern the runtime is built
// around.
package demo
