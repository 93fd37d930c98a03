package faq

// DefaultItems returns the built-in FAQ.
func DefaultItems() []Item {
	return []Item{
		{
			Question: "自己都合退職でも失業給付は受けられますか？",
			Answer:   "受けられます。ただし原則として待期期間7日間の後、給付制限期間があります。正当な理由がある場合は給付制限がかからないこともあります。",
		},
		{
			Question: "傷病手当金と失業給付は同時に受け取れますか？",
			Answer:   "同時には受け取れません。働けない期間は傷病手当金、働ける状態になってから失業給付を受給する流れになります。受給期間の延長申請を行うことで、両方を順番に活用できます。",
		},
		{
			Question: "診断書はどのタイミングで必要ですか？",
			Answer:   "傷病手当金の申請には、療養のため働けない期間について医師の意見書が必要です。退職前から通院していることが重要になります。",
		},
		{
			Question: "会社都合退職と自己都合退職の違いは何ですか？",
			Answer:   "会社都合退職では給付制限がなく、給付日数も多くなる傾向があります。離職票の退職理由を必ず確認してください。",
		},
		{
			Question: "診断結果の金額は保証されますか？",
			Answer:   "表示される金額は目安です。実際の受給額は賃金日額や加入期間などによって異なります。",
		},
	}
}
