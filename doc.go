/*
Package switchboard is a gateway in front of multiple model providers. One
canonical request goes in; the gateway picks the backend that serves the
requested model, translates tools into that backend's wire shape, calls it,
and normalizes whatever came back into a single canonical stream of events.

When a model fails, the gateway retries it with linear backoff and then
falls back through capability-equivalent models on other providers, so a
single provider outage degrades answers instead of dropping them.

	gw, err := switchboard.New(ctx)
	if err != nil {
		return err
	}

	run, err := gw.Dispatch(ctx, "You are a helpful assistant.", "What is a goroutine?", "gpt-4o", nil)
	if err != nil {
		return err
	}

	for event := range run.Events() {
		switch ev := event.(type) {
		case provider.Chunk[messages.Assistant]:
			fmt.Print(ev.Chunk.Content)
		case provider.Response[messages.Assistant]:
			fmt.Println()
		case provider.Error:
			return ev.Err
		}
	}

Providers become available by credential: set OPENAI_API_KEY,
ANTHROPIC_API_KEY, GOOGLE_API_KEY or XAI_API_KEY and the matching backend
joins the registry. Retry behavior is tuned with SWITCHBOARD_MAX_RETRIES,
SWITCHBOARD_RETRY_DELAY and SWITCHBOARD_TIMEOUT.
*/
package switchboard
