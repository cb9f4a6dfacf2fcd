// Package review decides when to ask the user to rate the application.
package review
