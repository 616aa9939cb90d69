package dtw

// Header label rows emitted verbatim as the first two lines of each DTW
// file. The long row carries the descriptive DI API field names, the short
// row the database column names; both must stay exactly as wide as the
// record they head.

// ORDR header line 1 (descriptive labels), 271 entries.
var ordrHeaderLong = []string{
	"DocNum", "DocEntry", "DocType", "HandWritten", "Printed", "DocDate", "DocDueDate", "CardCode",
	"CardName", "Address", "NumAtCard", "DocTotal", "AttachmentEntry", "DocCurrency", "DocRate",
	"Reference1", "Reference2", "Comments", "JournalMemo", "PaymentGroupCode", "DocTime",
	"SalesPersonCode", "TransportationCode", "Confirmed", "ImportFileNum", "SummeryType",
	"ContactPersonCode", "ShowSCN", "Series", "TaxDate", "PartialSupply", "DocObjectCode",
	"ShipToCode", "Indicator", "FederalTaxID", "DiscountPercent", "PaymentReference", "DocTotalFc",
	"Form1099", "Box1099", "RevisionPo", "RequriedDate", "CancelDate", "BlockDunning", "Pick",
	"PaymentMethod", "PaymentBlock", "PaymentBlockEntry", "CentralBankIndicator",
	"MaximumCashDiscount", "Project", "ExemptionValidityDateFrom", "ExemptionValidityDateTo",
	"WareHouseUpdateType", "Rounding", "ExternalCorrectedDocNum", "InternalCorrectedDocNum",
	"DeferredTax", "TaxExemptionLetterNum", "AgentCode", "NumberOfInstallments",
	"ApplyTaxOnFirstInstallment", "VatDate", "DocumentsOwner", "FolioPrefixString", "FolioNumber",
	"DocumentSubType", "BPChannelCode", "BPChannelContact", "Address2", "PayToCode", "ManualNumber",
	"UseShpdGoodsAct", "IsPayToBank", "PayToBankCountry", "PayToBankCode", "PayToBankAccountNo",
	"PayToBankBranch", "BPL_IDAssignedToInvoice", "DownPayment", "ReserveInvoice", "LanguageCode",
	"TrackingNumber", "PickRemark", "ClosingDate", "SequenceCode", "SequenceSerial", "SeriesString",
	"SubSeriesString", "SequenceModel", "UseCorrectionVATGroup", "DownPaymentAmount",
	"DownPaymentPercentage", "DownPaymentType", "DownPaymentAmountSC", "DownPaymentAmountFC",
	"VatPercent", "ServiceGrossProfitPercent", "OpeningRemarks", "ClosingRemarks",
	"RoundingDiffAmount", "ControlAccount", "InsuranceOperation347",
	"ArchiveNonremovableSalesQuotation", "GTSChecker", "GTSPayee", "ExtraMonth", "ExtraDays",
	"CashDiscountDateOffset", "StartFrom", "NTSApproved", "ETaxWebSite", "ETaxNumber",
	"NTSApprovedNumber", "EDocGenerationType", "EDocSeries", "EDocNum", "EDocExportFormat",
	"EDocStatus", "EDocErrorCode", "EDocErrorMessage", "DownPaymentStatus", "GroupSeries",
	"GroupNumber", "GroupHandWritten", "ReopenOriginalDocument",
	"ReopenManuallyClosedOrCanceledDocument", "CreateOnlineQuotation", "POSEquipmentNumber",
	"POSManufacturerSerialNumber", "POSCashierNumber", "ApplyCurrentVATRatesForDownPaymentsToDraw",
	"ClosingOption", "SpecifiedClosingDate", "OpenForLandedCosts", "RelevantToGTS",
	"AnnualInvoiceDeclarationReference", "Supplier", "Releaser", "Receiver", "BlanketAgreementNumber",
	"IsAlteration", "AssetValueDate", "DocumentDelivery", "AuthorizationCode", "StartDeliveryDate",
	"StartDeliveryTime", "EndDeliveryDate", "EndDeliveryTime", "VehiclePlate", "ATDocumentType",
	"ElecCommStatus", "ReuseDocumentNum", "ReuseNotaFiscalNum", "PrintSEPADirect", "FiscalDocNum",
	"POSDailySummaryNo", "POSReceiptNo", "PointOfIssueCode", "Letter", "FolioNumberFrom",
	"FolioNumberTo", "InterimType", "RelatedType", "RelatedEntry", "SAPPassport", "DocumentTaxID",
	"DateOfReportingControlStatementVAT", "ReportingSectionControlStatementVAT",
	"ExcludeFromTaxReportControlStatementVAT", "POS_CashRegister", "CreateQRCodeFrom", "PriceMode",
	"CommissionTrade", "CommissionTradeReturn", "UseBillToAddrToDetermineTax", "Cig", "Cup",
	"FatherCard", "FatherType", "ShipState", "ShipPlace", "CustOffice", "FCI", "AddLegIn", "LegTextF",
	"IndFinal", "U_LoanExpDate", "U_Transfer_Type", "U_IGN_RsvDue", "U_IGN_RsvSONum",
	"U_PCH_ApprvPay", "U_RDR_FinancingAppr", "U_Star_Acct", "U_AllowDOInv_Dep", "U_CustPO_Received",
	"U_RCN_Num", "U_POR_InventoryValue", "U_Appr_LowSlsPrice", "U_Appr_PO_Stock", "U_Appr_PO_NStock1",
	"U_Appr_PO_NStock2", "U_GSTSGDRate", "U_GSTSGDAmt", "U_Vessel", "U_LineBusiness",
	"U_RDR_IgnoreSpcTerms", "U_Dep_Required", "U_Dep_Received", "U_LoanAddr", "U_TRF_SlpName",
	"U_INM_Purpose", "U_ELTO_RevSchCrt", "U_ELTO_RevSchVal", "U_ELTO_RevCrtdDat", "U_ELTO_BillSchCrt",
	"U_ELTO_BillSchVal", "U_ELTO_BillCrtDat", "U_ELTO_LseTrf", "U_ELTO_LseTransNo", "U_Appr_DiffSQ",
	"U_FIN_TotalBefDisc", "U_FIN_LessDisc", "U_FIN_AddGST", "U_FIN_LessDeposit", "U_FIN_LessDepGST",
	"U_RefreshInfo", "U_PL_Remarks", "U_RDR_SellPrcSample", "U_Appr_Sample", "U_FIN_GSTDueFmFinc",
	"U_IntRemarks", "U_ImportConsign", "U_EndUserCode", "U_EndUserName", "U_TRF_AccList",
	"U_ELTO_RSVCode", "U_ELTO_ContactDetail", "U_ELTO_RsvComment", "U_FileName", "U_RDocNum",
	"U_Warehouse_Code", "U_Warehouse", "U_P_Approval_Code", "U_Customer_State", "U_Cust_Territory",
	"U_Team_Code", "U_Detailman_Code", "U_ContractNo", "U_ApplNeoComm", "U_SampleInv", "U_ETA",
	"U_RecEntry", "U_WMS_BasePick", "U_AutoPick", "U_URGENT", "U_WMS_RefNo", "U_WMS_FromHandheld",
	"U_WMS_DeviceID", "U_WMS_ScnUsr", "U_DeliveryCompt", "U_DeliveryDate", "U_CAPPSUpdate",
	"U_CAPPSUpdDat", "U_CAPPSNum", "U_OrigFile", "U_OrigName", "U_ServFile", "U_ServName",
	"U_CAPPSStsUpd", "U_CAPPSStsDat",
}

// ORDR header line 2 (technical labels), 271 entries.
var ordrHeaderShort = []string{
	"DocNum", "DocEntry", "DocType", "Handwrtten", "Printed", "DocDate", "DocDueDate", "CardCode",
	"CardName", "Address", "NumAtCard", "DocTotal", "AtcEntry", "DocCur", "DocRate", "Ref1", "Ref2",
	"Comments", "JrnlMemo", "GroupNum", "DocTime", "SlpCode", "TrnspCode", "Confirmed", "ImportEnt",
	"SummryType", "CntctCode", "ShowSCN", "Series", "TaxDate", "PartSupply", "ObjType", "ShipToCode",
	"Indicator", "LicTradNum", "DiscPrcnt", "PaymentRef", "UserSign", "DocTotalFC", "Form1099",
	"Box1099", "RevisionPo", "ReqDate", "CancelDate", "BlockDunn", "Pick", "PeyMethod", "PayBlock",
	"PayBlckRef", "CntrlBnk", "MaxDscn", "Project", "FromDate", "ToDate", "UpdInvnt", "Rounding",
	"CorrExt", "CorrInv", "DeferrTax", "LetterNum", "AgentCode", "Installmnt", "VATFirst", "VatDate",
	"OwnerCode", "FolioPref", "FolioNum", "DocSubType", "BPChCode", "BPChCntc", "Address2",
	"PayToCode", "ManualNum", "UseShpdGd", "IsPaytoBnk", "BnkCntry", "BankCode", "BnkAccount",
	"BnkBranch", "BPLId", "DpmPrcnt", "isIns", "LangCode", "TrackNo", "PickRmrk", "ClsDate",
	"SeqCode", "Serial", "SeriesStr", "SubStr", "Model", "UseCorrVat", "DpmAmnt", "DpmPrcnt",
	"Posted", "DpmAmntSC", "DpmAmntFC", "VatPercent", "SrvGpPrcnt", "Header", "Footer", "RoundDif",
	"CtlAccount", "InsurOp347", "IgnRelDoc", "Checker", "Payee", "ExtraMonth", "ExtraDays",
	"CdcOffset", "PayDuMonth", "NTSApprov", "NTSWebSite", "NTSeTaxNo", "NTSApprNo", "EDocGenTyp",
	"ESeries", "EDocNum", "EDocExpFrm", "EDocStatus", "EDocErrCod", "EDocErrMsg", "DpmStatus",
	"PQTGrpSer", "PQTGrpNum", "PQTGrpHW", "ReopOriDoc", "ReopManCls", "OnlineQuo", "POSEqNum",
	"POSManufSN", "POSCashN", "DpmAsDscnt", "ClosingOpt", "SpecDate", "OpenForLaC", "GTSRlvnt",
	"AnnInvDecR", "Supplier", "Releaser", "Receiver", "AgrNo", "IsAlt", "AssetDate", "DocDlvry",
	"AuthCode", "StDlvDate", "StDlvTime", "EndDlvDate", "EndDlvTime", "VclPlate", "AtDocType",
	"ElCoStatus", "IsReuseNum", "IsReuseNFN", "PrintSEPA", "FiscDocNum", "ZrdAbs", "POSRcptNo",
	"PTICode", "Letter", "FolNumFrom", "FolNumTo", "InterimTyp", "RelatedTyp", "RelatedEnt",
	"SAPPassprt", "DocTaxID", "DateReport", "RepSection", "ExclTaxRep", "PosCashReg", "QRCodeSrc",
	"PriceMode", "ShipToCode", "ComTrade", "ComTradeRt", "UseBilAddr", "CIG", "CUP", "FatherCard",
	"FatherType", "ShipState", "ShipPlace", "CustOffice", "FCI", "AddLegIn", "LegTextF", "DANFELgTxt",
	"IndFinal", "DataVers", "U_LoanExpDate", "U_Transfer_Type", "U_IGN_RsvDue", "U_IGN_RsvSONum",
	"U_PCH_ApprvPay", "U_RDR_FinancingAppr", "U_Star_Acct", "U_AllowDOInv_Dep", "U_CustPO_Received",
	"U_RCN_Num", "U_POR_InventoryValue", "U_Appr_LowSlsPrice", "U_Appr_PO_Stock", "U_Appr_PO_NStock1",
	"U_Appr_PO_NStock2", "U_GSTSGDRate", "U_GSTSGDAmt", "U_Vessel", "U_LineBusiness",
	"U_RDR_IgnoreSpcTerms", "U_Dep_Required", "U_Dep_Received", "U_LoanAddr", "U_TRF_SlpName",
	"U_INM_Purpose", "U_ELTO_RevSchCrt", "U_ELTO_RevSchVal", "U_ELTO_RevCrtdDat", "U_ELTO_BillSchCrt",
	"U_ELTO_BillSchVal", "U_ELTO_BillCrtDat", "U_ELTO_LseTrf", "U_ELTO_LseTransNo", "U_Appr_DiffSQ",
	"U_FIN_TotalBefDisc", "U_FIN_LessDisc", "U_FIN_AddGST", "U_FIN_LessDeposit", "U_FIN_LessDepGST",
	"U_RefreshInfo", "U_PL_Remarks", "U_RDR_SellPrcSample", "U_Appr_Sample", "U_FIN_GSTDueFmFinc",
	"U_IntRemarks", "U_ImportConsign", "U_EndUserCode", "U_EndUserName", "U_TRF_AccList",
	"U_ELTO_RSVCode", "U_ELTO_ContactDetail", "U_ELTO_RsvComment", "U_FileName", "U_RDocNum",
	"U_Warehouse_Code", "U_Warehouse", "U_P_Approval_Code", "U_Customer_State", "U_Cust_Territory",
	"U_Team_Code", "U_Detailman_Code", "U_ContractNo", "U_ApplNeoComm", "U_SampleInv", "U_ETA",
	"U_RecEntry", "U_WMS_BasePick", "U_AutoPick", "U_URGENT", "U_WMS_RefNo", "U_WMS_FromHandheld",
	"U_WMS_DeviceID", "U_WMS_ScnUsr", "U_DeliveryCompt", "U_DeliveryDate", "U_CAPPSUpdate",
	"U_CAPPSUpdDat", "U_CAPPSNum", "U_OrigFile", "U_OrigName",
}

// RDR1 header line 1 (descriptive labels), 244 entries.
var rdr1HeaderLong = []string{
	"ParentKey", "LineNum", "ItemCode", "ItemDescription", "Quantity", "ShipDate", "Price",
	"PriceAfterVAT", "Currency", "Rate", "DiscountPercent", "VendorNum", "SerialNum", "WarehouseCode",
	"SalesPersonCode", "CommisionPercent", "TreeType", "AccountCode", "UseBaseUnits",
	"SupplierCatNum", "CostingCode", "ProjectCode", "BarCode", "VatGroup", "Height1", "Hight1Unit",
	"Height2", "Height2Unit", "Lengh1", "Lengh1Unit", "Lengh2", "Lengh2Unit", "Weight1",
	"Weight1Unit", "Weight2", "Weight2Unit", "Factor1", "Factor2", "Factor3", "Factor4", "BaseType",
	"BaseEntry", "BaseLine", "Volume", "VolumeUnit", "Width1", "Width1Unit", "Width2", "Width2Unit",
	"Address", "TaxCode", "TaxType", "TaxLiable", "BackOrder", "FreeText", "ShippingMethod",
	"CorrectionInvoiceItem", "CorrInvAmountToStock", "CorrInvAmountToDiffAcct", "WTLiable",
	"DeferredTax", "MeasureUnit", "UnitsOfMeasurment", "LineTotal", "TaxPercentagePerRow", "TaxTotal",
	"ConsumerSalesForecast", "ExciseAmount", "CountryOrg", "SWW", "TransactionType",
	"DistributeExpense", "RowTotalFC", "CFOPCode", "CSTCode", "Usage", "TaxOnly", "UnitPrice",
	"LineStatus", "PackageQuantity", "LineType", "COGSCostingCode", "COGSAccountCode",
	"ChangeAssemlyBoMWarehouse", "GrossBuyPrice", "GrossBase", "GrossProfitTotalBasePrice",
	"CostingCode2", "CostingCode3", "CostingCode4", "CostingCode5", "ItemDetails", "LocationCode",
	"ActualDeliveryDate", "ExLineNo", "RequiredDate", "RequiredQuantity", "COGSCostingCode2",
	"COGSCostingCode3", "COGSCostingCode4", "COGSCostingCode5", "CSTforIPI", "CSTforPIS",
	"CSTforCOFINS", "CreditOriginCode", "WithoutInventoryMovement", "AgreementNo",
	"AgreementRowNumber", "ActualBaseEntry", "ActualBaseLine", "DocEntry", "Surpluses",
	"DefectAndBreakup", "Shortages", "ConsiderQuantity", "PartialRetirement", "RetirementQuantity",
	"RetirementAPC", "ThirdParty", "PoNum", "PoItmNum", "ExpenseType", "ReceiptNumber",
	"ExpenseOperationType", "FederalTaxID", "GrossProfit", "GrossProfitFC", "GrossProfitSC",
	"UoMEntry", "InventoryQuantity", "ParentLineNum", "Incoterms", "TransportMode",
	"NatureOfTransaction", "DestinationCountryForImport", "DestinationRegionForImport",
	"OriginCountryForExport", "OriginRegionForExport", "ChangeInventoryQuantityIndependently",
	"FreeOfChargeBP", "SACEntry", "HSNEntry", "GrossPrice", "GrossTotal", "GrossTotalFC", "NCMCode",
	"NVECode", "IndEscala", "CtrSealQty", "CNJPMan", "CESTCode", "UFFiscalBenefitCode",
	"ReverseCharge", "ShipToCode", "ShipToDescription", "OwnerCode", "ExternalCalcTaxRate",
	"ExternalCalcTaxAmount", "StandardItemIdentification", "CommodityClassification",
	"UnencumberedReason", "CUSplit", "U_ZL_SlpCode", "U_ZL_SlpName", "U_ZL_CardCode", "U_ZL_CardName",
	"U_ZL_InvoiceNum", "U_ZL_ItemCode", "U_ZL_ItemName", "U_BonusItem", "U_HasAlternativeItem",
	"U_PermitNum", "U_Has_EPoint", "U_PI_Qty", "U_PI_Price", "U_Redemption", "U_EPoint_Redeemed",
	"U_Rebate_RefNum", "U_SLS_Remarks1", "U_SLS_Remarks2", "U_SLS_Remarks3", "U_SLS_Remarks4",
	"U_SLS_Remarks5", "U_GSTSGDRate", "U_GSTSGDAmt", "U_Related_SO_Number", "U_Related_SO_LineNum",
	"U_QUT_Calc_BOM_Cost", "U_RDR_HasSpcTerms", "U_RDR_SpcPayTerms", "U_TRF_SerialNum",
	"U_ELTO_DefIncInd", "U_ELTO_ConStrDat", "U_ELTO_ConEndDat", "U_ELTO_FreqBill",
	"U_ELTO_FreqAdvRev", "U_ELTO_BillStrDat", "U_ELTO_LseQty", "U_ELTO_CustPO", "U_ELTO_EstBillAmt",
	"U_ELTO_BillId", "U_ELTO_BillLine", "U_ELTO_NoCustPOApp", "U_ELTO_Lease", "U_ELTO_LseItmCde",
	"U_ELTO_LseItmDsc", "U_ELTO_LseWhs", "U_ELTO_LseDlvQty", "U_ELTO_LseRtnQty", "U_ELTO_RevSchType",
	"U_ELTO_ContractQty", "U_ELTO_QtyConPrice", "U_ELTO_Prorata", "U_ELTO_BillPeriodFr",
	"U_ELTO_BillPeriodTo", "U_ELTO_BaseDocEntry", "U_ELTO_BaseDocNum", "U_ELTO_BaseRow",
	"U_FIN_Shown", "U_PL_CartonNum", "U_PL_KgCarton", "U_PL_MYRegNum", "U_TRF_VIT_Prc",
	"U_TRF_SellingPrice", "U_UnitPriceBP", "U_POCountry", "U_Invoice_No", "U_Invoice_Item",
	"U_Return_Ref_No", "U_P_Customer_Code", "U_ZP_Item_Code", "U_Credit_Reason", "U_List_Price",
	"U_ZP_Customer_Code", "U_Customer_Name", "U_ZP_Invoice_Item", "U_Customer_State",
	"U_Cust_Territory", "U_TempDivision", "U_RecLines", "U_COO", "U_TfrBinTo", "U_TrfFromBin",
	"U_GRN",
}

// RDR1 header line 2 (technical labels), 244 entries.
var rdr1HeaderShort = []string{
	"DocNum", "LineNum", "ItemCode", "Dscription", "Quantity", "ShipDate", "Price", "PriceAfVAT",
	"Currency", "Rate", "DiscPrcnt", "VendorNum", "SerialNum", "WhsCode", "SlpCode", "Commission",
	"TreeType", "AcctCode", "UseBaseUn", "SubCatNum", "OcrCode", "Project", "CodeBars", "VatGroup",
	"Height1", "Hght1Unit", "Height2", "Hght2Unit", "Length1", "Len1Unit", "length2", "Len2Unit",
	"Weight1", "Wght1Unit", "Weight2", "Wght2Unit", "Factor1", "Factor2", "Factor3", "Factor4",
	"BaseType", "BaseEntry", "BaseLine", "Volume", "VolUnit", "Width1", "Wdth1Unit", "Width2",
	"Wdth2Unit", "Address", "TaxCode", "TaxType", "TaxStatus", "BackOrdr", "FreeTxt", "TrnsCode",
	"CEECFlag", "ToStock", "ToDiff", "WtLiable", "DeferrTax", "unitMsr", "NumPerMsr", "LineTotal",
	"VatPrcnt", "VatSum", "ConsumeFCT", "ExciseAmt", "CountryOrg", "SWW", "TranType", "DistribExp",
	"TotalFrgn", "CFOPCode", "CSTCode", "Usage", "TaxOnly", "PriceBefDi", "LineStatus", "PackQty",
	"LineType", "CogsOcrCod", "CogsAcct", "ChgAsmBoMW", "GrossBuyPr", "GrossBase", "GPTtlBasPr",
	"OcrCode2", "OcrCode3", "OcrCode4", "OcrCode5", "Text", "LocCode", "ActDelDate", "ExLineNo",
	"PQTReqDate", "PQTReqQty", "CogsOcrCo2", "CogsOcrCo3", "CogsOcrCo4", "CogsOcrCo5", "CSTfIPI",
	"CSTfPIS", "CSTfCOFINS", "CredOrigin", "NoInvtryMv", "AgrNo", "AgrLnNum", "ActBaseEnt",
	"ActBaseLn", "DocEntry", "Surpluses", "DefBreak", "Shortages", "NeedQty", "PartRetire",
	"RetireQty", "RetireAPC", "ThirdParty", "PoNum", "PoItmNum", "ExpType", "ExpUUID", "ExpOpType",
	"LicTradNum", "GrssProfit", "GrssProfFC", "GrssProfSC", "SpecPrice", "UomEntry", "InvQty",
	"PrntLnNum", "Incoterms", "TransMod", "NatOfTrans", "ISDtCryImp", "ISDtRgnImp", "ISOrCryExp",
	"ISOrRgnExp", "InvQtyOnly", "FreeChrgBP", "SacEntry", "HsnEntry", "GPBefDisc", "GTotal",
	"GTotalFC", "NCMCode", "NVECode", "IndEscala", "CtrSealQty", "CNJPMan", "CESTCode", "UFFiscBene",
	"RevCharge", "ShipToCode", "ShipToDesc", "OwnerCode", "ExtTaxRate", "ExtTaxSum", "ExtTaxSumF",
	"ExtTaxSumS", "StdItemId", "CommClass", "UnencReasn", "CUSplit", "U_ZL_SlpCode", "U_ZL_SlpName",
	"U_ZL_CardCode", "U_ZL_CardName", "U_ZL_InvoiceNum", "U_ZL_ItemCode", "U_ZL_ItemName",
	"U_BonusItem", "U_HasAlternativeItem", "U_PermitNum", "U_Has_EPoint", "U_PI_Qty", "U_PI_Price",
	"U_Redemption", "U_EPoint_Redeemed", "U_Rebate_RefNum", "U_SLS_Remarks1", "U_SLS_Remarks2",
	"U_SLS_Remarks3", "U_SLS_Remarks4", "U_SLS_Remarks5", "U_GSTSGDRate", "U_GSTSGDAmt",
	"U_Related_SO_Number", "U_Related_SO_LineNum", "U_QUT_Calc_BOM_Cost", "U_RDR_HasSpcTerms",
	"U_RDR_SpcPayTerms", "U_TRF_SerialNum", "U_ELTO_DefIncInd", "U_ELTO_ConStrDat",
	"U_ELTO_ConEndDat", "U_ELTO_FreqBill", "U_ELTO_FreqAdvRev", "U_ELTO_BillStrDat", "U_ELTO_LseQty",
	"U_ELTO_CustPO", "U_ELTO_EstBillAmt", "U_ELTO_BillId", "U_ELTO_BillLine", "U_ELTO_NoCustPOApp",
	"U_ELTO_Lease", "U_ELTO_LseItmCde", "U_ELTO_LseItmDsc", "U_ELTO_LseWhs", "U_ELTO_LseDlvQty",
	"U_ELTO_LseRtnQty", "U_ELTO_RevSchType", "U_ELTO_ContractQty", "U_ELTO_QtyConPrice",
	"U_ELTO_Prorata", "U_ELTO_BillPeriodFr", "U_ELTO_BillPeriodTo", "U_ELTO_BaseDocEntry",
	"U_ELTO_BaseDocNum", "U_ELTO_BaseRow", "U_FIN_Shown", "U_PL_CartonNum", "U_PL_KgCarton",
	"U_PL_MYRegNum", "U_TRF_VIT_Prc", "U_TRF_SellingPrice", "U_UnitPriceBP", "U_POCountry",
	"U_Invoice_No", "U_Invoice_Item", "U_Return_Ref_No", "U_P_Customer_Code", "U_ZP_Item_Code",
	"U_Credit_Reason", "U_List_Price", "U_ZP_Customer_Code", "U_Customer_Name", "U_ZP_Invoice_Item",
	"U_Customer_State", "U_Cust_Territory", "U_TempDivision", "U_RecLines", "U_COO",
}
