package speedtest

// Windowed averages over speed_test_results, joined to line metadata.
// The %s placeholder takes the dialect-quoted lines table; MySQL reserves
// the word lines.
const (
	averageSpeedsQuery = `SELECT s.line_id, l.line_number, l.name,
AVG(s.upload_speed) AS avg_upload_speed,
AVG(s.download_speed) AS avg_download_speed
FROM speed_test_results s
JOIN %s l ON l.id = s.line_id
WHERE s.date_time >= ?
GROUP BY s.line_id, l.line_number, l.name
ORDER BY s.line_id`

	averagePingQuery = `SELECT s.line_id, l.line_number, l.name,
AVG(s.ping) AS avg_ping
FROM speed_test_results s
JOIN %s l ON l.id = s.line_id
WHERE s.date_time >= ?
GROUP BY s.line_id, l.line_number, l.name
ORDER BY s.line_id`
)
