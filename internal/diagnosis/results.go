package diagnosis

var resultMedicalOptimized = Result{
	Title:       "傷病手当金 + 失業給付の最適化プラン",
	MaxAmount:   "250",
	Description: "医師の診断書を活用し、傷病手当金と失業給付を組み合わせることで最大の受給が可能です。",
	Period:      "最大10ヶ月",
	Steps: []string{
		"医師による診断書の準備",
		"退職前の傷病手当金申請準備",
		"退職手続きの最適化",
		"ハローワークでの申請",
		"継続的な受給手続き",
	},
	DetailURL: "/diagnosis/medical-optimized.html",
}

var resultPostResignationMedical = Result{
	Title:       "退職後の傷病手当金活用プラン",
	MaxAmount:   "180",
	Description: "退職後でも医師の診断書により、失業給付の延長が可能です。",
	Period:      "最大7ヶ月",
	Steps: []string{
		"医師による診断書の確認",
		"ハローワークでの求職申込み",
		"給付制限の短縮申請",
		"受給期間延長の手続き",
	},
	DetailURL: "/diagnosis/post-resignation-medical.html",
}

var resultCompanyCircumstances = Result{
	Title:       "会社都合退職の優遇プラン",
	MaxAmount:   "120",
	Description: "会社都合退職により給付制限なしで早期受給が可能です。",
	Period:      "最大5ヶ月",
	Steps: []string{
		"退職理由の証明書準備",
		"ハローワークでの求職申込み",
		"給付制限なしでの受給開始",
		"再就職手当の活用",
	},
	DetailURL: "/diagnosis/company-circumstances.html",
}

var resultQuickStart = Result{
	Title:       "早期受給開始プラン",
	MaxAmount:   "90",
	Description: "最短期間での受給開始を重視したプランです。",
	Period:      "3-4ヶ月",
	Steps: []string{
		"ハローワークでの求職申込み",
		"職業訓練の検討",
		"積極的な就職活動",
		"早期の再就職手当獲得",
	},
	DetailURL: "/diagnosis/quick-start.html",
}

var resultStandard = Result{
	Title:       "標準的な失業給付プラン",
	MaxAmount:   "100",
	Description: "一般的な自己都合退職での失業給付プランです。",
	Period:      "3ヶ月",
	Steps: []string{
		"ハローワークでの求職申込み",
		"3ヶ月の給付制限期間",
		"基本手当の受給",
		"就職活動の継続",
	},
	DetailURL: "/diagnosis/standard.html",
}
