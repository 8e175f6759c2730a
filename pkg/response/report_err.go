package response

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"planora-api/pkg/discord"

	"github.com/gin-gonic/gin"
)

// sendDiscordMessageAsync sends Discord messages asynchronously.
func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}

	ctx := c.Request.Context()
	go func() {
		splitMessages := splitMessageForDiscord(message)
		for _, msg := range splitMessages {
			if err := d.ReportBug(ctx, msg); err != nil {
				// Standard log as fallback since we're in an async goroutine.
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessageForDiscord splits a message into chunks that fit Discord's message length limits.
func splitMessageForDiscord(message string) []string {
	const maxLen = 5000
	var chunks []string
	var current string
	lines := strings.Split(message, "\n")

	for _, line := range lines {
		line += "\n"
		if len(current)+len(line) > maxLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > maxLen {
				chunks = append(chunks, line[:maxLen])
				line = line[maxLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// captureStackTrace returns the current goroutine's stack as formatted frames.
func captureStackTrace() []string {
	pcs := make([]uintptr, defaultStackTraceDepth)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var trace []string
	for {
		frame, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return trace
}

// buildInternalServerErrorReport builds a formatted error report for Discord.
func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder

	sb.WriteString("**Internal Server Error**\n")
	sb.WriteString(fmt.Sprintf("`%s %s`\n", c.Request.Method, c.Request.URL.String()))
	sb.WriteString(fmt.Sprintf("Error: %s\n", errString))

	if body := readRequestBody(c); body != "" {
		sb.WriteString(fmt.Sprintf("Body: %s\n", body))
	}

	sb.WriteString("Stack:\n")
	for _, frame := range backtrace {
		sb.WriteString(frame)
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildPanicReport builds a formatted panic report for Discord.
func buildPanicReport(c *gin.Context, recovered any, backtrace []string) string {
	return buildInternalServerErrorReport(c, fmt.Sprintf("panic: %v", recovered), backtrace)
}

// readRequestBody reads and restores the request body so handlers can still consume it.
func readRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return string(bodyBytes)
}
