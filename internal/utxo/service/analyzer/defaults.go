package analyzer

const (
	stageLoadBlocks       = "load_blocks"
	stageAggregateValues  = "aggregate_values"
	stageTimeDiffs        = "time_diffs"
	stageHourBuckets      = "hour_buckets"
	stageMergeBlockReport = "merge_block_report"
	stageMergeTimeReport  = "merge_time_report"

	reportBlocks = "blocks_info"
	reportTimes  = "blocks_t_info"
)
