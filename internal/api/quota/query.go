package quota

// Aggregations over quota_results. All of them order deterministically so
// identical requests over unchanged data produce byte-identical bodies.
// The %s placeholder takes the dialect-quoted lines table; MySQL reserves
// the word lines.
const (
	totalDataUsedQuery = `SELECT q.line_id, l.line_number, l.name, SUM(q.data_used) AS total_data_used
FROM quota_results q
JOIN %s l ON l.id = q.line_id
GROUP BY q.line_id, l.line_number, l.name
ORDER BY q.line_id`

	countPerRenewalCostQuery = `SELECT renewal_cost, COUNT(*) AS count
FROM quota_results
WHERE renewal_cost IS NOT NULL
GROUP BY renewal_cost
ORDER BY renewal_cost`

	// The latest snapshot per line carries the remaining balance; summing
	// snapshots would double-count.
	remainingBalanceQuery = `SELECT q.line_id, l.line_number, l.name, q.balance
FROM quota_results q
JOIN %s l ON l.id = q.line_id
WHERE q.date_time = (
	SELECT MAX(q2.date_time) FROM quota_results q2 WHERE q2.line_id = q.line_id
)
ORDER BY q.line_id`
)
